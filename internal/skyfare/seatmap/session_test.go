package seatmap

import (
	"testing"

	"github.com/dcazacu/goskyfare/internal/pkg/pkgerror"
	"github.com/dcazacu/goskyfare/internal/skyfare/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() *Session {
	return NewSession("F1", []entity.Seat{
		{ID: "1A", Row: 1, Column: "A", Class: entity.SeatBusiness, Status: entity.SeatAvailable, Price: 12500},
		{ID: "1B", Row: 1, Column: "B", Class: entity.SeatBusiness, Status: entity.SeatOccupied, Price: 12500},
		{ID: "8A", Row: 8, Column: "A", Class: entity.SeatEconomy, Status: entity.SeatAvailable, Price: 5000},
		{ID: "8B", Row: 8, Column: "B", Class: entity.SeatEconomy, Status: entity.SeatAvailable, Price: 5000},
	})
}

func TestTogglePairReturnsToAvailable(t *testing.T) {
	session := testSession()

	seats, selected, err := session.Toggle("1A")
	require.NoError(t, err)
	assert.Equal(t, entity.SeatSelected, seats[0].Status)
	require.Len(t, selected, 1)
	assert.Equal(t, 12500, selected[0].Price)

	seats, selected, err = session.Toggle("1A")
	require.NoError(t, err)
	assert.Equal(t, entity.SeatAvailable, seats[0].Status)
	assert.Equal(t, 12500, seats[0].Price)
	assert.Empty(t, selected)
}

func TestToggleOccupiedIsNoop(t *testing.T) {
	session := testSession()

	seats, selected, err := session.Toggle("1B")
	require.NoError(t, err)
	assert.Equal(t, entity.SeatOccupied, seats[1].Status)
	assert.Empty(t, selected)
	assert.Zero(t, session.TotalPrice())
}

func TestToggleUnknownSeat(t *testing.T) {
	session := testSession()

	_, _, err := session.Toggle("99Z")
	require.Error(t, err)
	assert.Equal(t, pkgerror.CodeNotFound, pkgerror.CodeOf(err))
}

func TestTotalPriceTracksSelection(t *testing.T) {
	session := testSession()

	_, _, err := session.Toggle("8A")
	require.NoError(t, err)
	_, _, err = session.Toggle("8B")
	require.NoError(t, err)
	assert.Equal(t, 10000, session.TotalPrice())

	_, _, err = session.Toggle("1A")
	require.NoError(t, err)
	assert.Equal(t, 22500, session.TotalPrice())

	_, _, err = session.Toggle("8B")
	require.NoError(t, err)
	assert.Equal(t, 17500, session.TotalPrice())
}

func TestConfirmEmptySelection(t *testing.T) {
	session := testSession()

	_, _, err := session.Confirm()
	require.Error(t, err)
	assert.Equal(t, pkgerror.CodeNoSelection, pkgerror.CodeOf(err))
}

func TestConfirm(t *testing.T) {
	session := testSession()

	_, _, err := session.Toggle("8A")
	require.NoError(t, err)
	_, _, err = session.Toggle("8B")
	require.NoError(t, err)

	selected, total, err := session.Confirm()
	require.NoError(t, err)
	assert.Len(t, selected, 2)
	assert.Equal(t, 10000, total)
}

func TestSeatsReturnsCopy(t *testing.T) {
	session := testSession()

	seats := session.Seats()
	seats[0].Status = entity.SeatOccupied

	_, selected, err := session.Toggle("1A")
	require.NoError(t, err)
	assert.Len(t, selected, 1)
}
