package cart_test

import (
	"testing"

	"foodie-express/internal/cart"
	"foodie-express/internal/domain"

	"github.com/stretchr/testify/assert"
)

var (
	itemA = domain.MenuItem{ID: "a", Name: "Margherita", Price: 8.50}
	itemB = domain.MenuItem{ID: "b", Name: "Garlic Bread", Price: 3.25}
)

func TestLedger_AddAccumulates(t *testing.T) {
	ledger := cart.NewLedger()

	assert.NoError(t, ledger.Add(itemA, 2))
	assert.NoError(t, ledger.Add(itemA, 3))

	lines := ledger.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 5*itemA.Price, ledger.Subtotal())
}

func TestLedger_AddRejectsNonPositiveQuantity(t *testing.T) {
	ledger := cart.NewLedger()

	assert.ErrorIs(t, ledger.Add(itemA, 0), cart.ErrInvalidQuantity)
	assert.ErrorIs(t, ledger.Add(itemA, -2), cart.ErrInvalidQuantity)
	assert.Equal(t, 0, ledger.Len())
}

func TestLedger_SetQuantity(t *testing.T) {
	ledger := cart.NewLedger()
	assert.NoError(t, ledger.Add(itemA, 1))

	found, err := ledger.SetQuantity("a", 4)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 4, ledger.ItemCount())
}

func TestLedger_SetQuantityZeroRemovesLine(t *testing.T) {
	ledger := cart.NewLedger()
	assert.NoError(t, ledger.Add(itemA, 1))

	found, err := ledger.SetQuantity("a", 0)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 0, ledger.Len())
	assert.Equal(t, 0.0, ledger.Subtotal())
}

func TestLedger_SetQuantityUnknownItemIsNoOp(t *testing.T) {
	ledger := cart.NewLedger()
	assert.NoError(t, ledger.Add(itemA, 2))

	found, err := ledger.SetQuantity("missing", 3)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 2, ledger.ItemCount())
}

func TestLedger_SetQuantityRejectsNegative(t *testing.T) {
	ledger := cart.NewLedger()
	assert.NoError(t, ledger.Add(itemA, 2))

	_, err := ledger.SetQuantity("a", -1)
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	assert.Equal(t, 2, ledger.ItemCount())
}

func TestLedger_ItemCountVersusLen(t *testing.T) {
	ledger := cart.NewLedger()
	assert.NoError(t, ledger.Add(itemA, 2))
	assert.NoError(t, ledger.Add(itemB, 1))

	assert.Equal(t, 3, ledger.ItemCount())
	assert.Equal(t, 2, ledger.Len())
}

func TestLedger_LinesKeepInsertionOrder(t *testing.T) {
	ledger := cart.NewLedger()
	assert.NoError(t, ledger.Add(itemB, 1))
	assert.NoError(t, ledger.Add(itemA, 1))

	lines := ledger.Lines()
	assert.Equal(t, "b", lines[0].Item.ID)
	assert.Equal(t, "a", lines[1].Item.ID)

	// Removing the first line keeps the remaining order intact.
	_, err := ledger.SetQuantity("b", 0)
	assert.NoError(t, err)
	lines = ledger.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, "a", lines[0].Item.ID)
}

func TestLedger_SubtotalScenario(t *testing.T) {
	ledger := cart.NewLedger()
	assert.NoError(t, ledger.Add(itemA, 2))
	assert.NoError(t, ledger.Add(itemB, 1))

	assert.InDelta(t, 20.25, ledger.Subtotal(), 1e-9)
}

func TestLedger_Reset(t *testing.T) {
	ledger := cart.NewLedger()
	assert.NoError(t, ledger.Add(itemA, 2))

	ledger.Reset()

	assert.Equal(t, 0, ledger.Len())
	assert.Equal(t, 0.0, ledger.Subtotal())
	assert.Empty(t, ledger.Lines())
}

func TestLineTotal(t *testing.T) {
	line := domain.CartLine{Item: itemA, Quantity: 3}
	assert.InDelta(t, 25.50, cart.LineTotal(line), 1e-9)
}
