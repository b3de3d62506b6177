package core

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/nikolaydubina/fpdecimal"
)

func TestSideString(t *testing.T) {
	tests := []struct {
		name string
		side Side
		want string
	}{
		{"Buy", Buy, "BID"},
		{"Sell", Sell, "ASK"},
		{"Invalid", Side(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.side.String(); got != tt.want {
				t.Errorf("Side.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSideOpposite(t *testing.T) {
	if Buy.Opposite() != Sell {
		t.Error("Expected opposite of Buy to be Sell")
	}
	if Sell.Opposite() != Buy {
		t.Error("Expected opposite of Sell to be Buy")
	}
}

func TestNewMarketOrder(t *testing.T) {
	orderID := "test-123"
	quantity := fpdecimal.FromFloat(10.5)

	order, err := NewMarketOrder(orderID, Buy, quantity)
	if err != nil {
		t.Fatalf("NewMarketOrder returned error: %v", err)
	}

	if order.ID() != orderID {
		t.Errorf("Expected ID %s, got %s", orderID, order.ID())
	}

	if order.Side() != Buy {
		t.Errorf("Expected Side Buy, got %v", order.Side())
	}

	if !order.Quantity().Equal(quantity) {
		t.Errorf("Expected Quantity %v, got %v", quantity, order.Quantity())
	}

	if !order.OriginalQty().Equal(quantity) {
		t.Errorf("Expected OriginalQty %v, got %v", quantity, order.OriginalQty())
	}

	if !order.Price().Equal(fpdecimal.Zero) {
		t.Errorf("Expected Price 0, got %v", order.Price())
	}

	if !order.IsMarketOrder() {
		t.Error("Expected IsMarketOrder to be true")
	}

	if order.IsLimitOrder() {
		t.Error("Expected IsLimitOrder to be false")
	}
}

func TestNewMarketOrderInvalidQuantity(t *testing.T) {
	for _, qty := range []fpdecimal.Decimal{fpdecimal.Zero, fpdecimal.FromFloat(-5.0)} {
		if _, err := NewMarketOrder("bad", Buy, qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("Expected ErrInvalidQuantity for quantity %v, got %v", qty, err)
		}
	}
}

func TestNewLimitOrder(t *testing.T) {
	orderID := "test-123"
	quantity := fpdecimal.FromFloat(10.5)
	price := fpdecimal.FromFloat(100.0)

	order, err := NewLimitOrder(orderID, Sell, quantity, price)
	if err != nil {
		t.Fatalf("NewLimitOrder returned error: %v", err)
	}

	if order.ID() != orderID {
		t.Errorf("Expected ID %s, got %s", orderID, order.ID())
	}

	if order.Side() != Sell {
		t.Errorf("Expected Side Sell, got %v", order.Side())
	}

	if !order.Price().Equal(price) {
		t.Errorf("Expected Price %v, got %v", price, order.Price())
	}

	if order.OrderType() != TypeLimit {
		t.Errorf("Expected OrderType LIMIT, got %v", order.OrderType())
	}

	if !order.IsLimitOrder() {
		t.Error("Expected IsLimitOrder to be true")
	}
}

func TestNewLimitOrderValidation(t *testing.T) {
	price := fpdecimal.FromFloat(100.0)
	quantity := fpdecimal.FromFloat(1.0)

	if _, err := NewLimitOrder("bad", Buy, fpdecimal.Zero, price); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Expected ErrInvalidQuantity, got %v", err)
	}

	if _, err := NewLimitOrder("bad", Buy, quantity, fpdecimal.Zero); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("Expected ErrInvalidPrice, got %v", err)
	}

	if _, err := NewLimitOrder("bad", Buy, quantity, fpdecimal.FromFloat(-1.0)); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("Expected ErrInvalidPrice for negative price, got %v", err)
	}
}

func TestOrderQuantityMutation(t *testing.T) {
	order, err := NewLimitOrder("o1", Buy, fpdecimal.FromFloat(10.0), fpdecimal.FromFloat(100.0))
	if err != nil {
		t.Fatalf("NewLimitOrder returned error: %v", err)
	}

	order.DecreaseQuantity(fpdecimal.FromFloat(4.0))
	if !order.Quantity().Equal(fpdecimal.FromFloat(6.0)) {
		t.Errorf("Expected Quantity 6, got %v", order.Quantity())
	}

	if !order.OriginalQty().Equal(fpdecimal.FromFloat(10.0)) {
		t.Errorf("Expected OriginalQty to stay 10, got %v", order.OriginalQty())
	}

	order.SetQuantity(fpdecimal.Zero)
	if !order.Quantity().Equal(fpdecimal.Zero) {
		t.Errorf("Expected Quantity 0, got %v", order.Quantity())
	}
}

func TestOrderMarshalJSON(t *testing.T) {
	order, err := NewLimitOrder("o1", Sell, fpdecimal.FromFloat(2.0), fpdecimal.FromFloat(50.0))
	if err != nil {
		t.Fatalf("NewLimitOrder returned error: %v", err)
	}

	data, err := json.Marshal(order)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	if decoded["id"] != "o1" {
		t.Errorf("Expected id o1, got %s", decoded["id"])
	}
	if decoded["side"] != "ASK" {
		t.Errorf("Expected side ASK, got %s", decoded["side"])
	}
	if decoded["orderType"] != "LIMIT" {
		t.Errorf("Expected orderType LIMIT, got %s", decoded["orderType"])
	}
}
