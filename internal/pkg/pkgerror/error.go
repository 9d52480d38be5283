package pkgerror

import "errors"

type Code int

const (
	CodeUnknown Code = iota
	CodeInvalidInput
	CodeNotFound
	CodeConflict
	CodeNoSelection
)

// Business is an expected domain failure. It carries a machine code so
// transport layers can map it to a status without string matching.
type Business struct {
	msg  string
	code Code
}

func NewBusiness(msg string, code Code) *Business {
	return &Business{msg: msg, code: code}
}

func (b *Business) Error() string {
	return b.msg
}

func (b *Business) Code() Code {
	return b.code
}

// CodeOf extracts the business code from err, or CodeUnknown when err
// is not a Business error.
func CodeOf(err error) Code {
	var business *Business
	if errors.As(err, &business) {
		return business.Code()
	}
	return CodeUnknown
}
