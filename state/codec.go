package state

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// encodeSlice renders the value of slice in s. empty is true when the slice
// holds its default value and should be removed from storage instead.
func encodeSlice(s State, slice Slice) (value string, empty bool, err error) {
	var v any
	switch slice {
	case SliceUserInfo:
		if s.UserInfo == nil {
			return "", true, nil
		}
		v = s.UserInfo
	case SliceCartItems:
		if len(s.Cart.CartItems) == 0 {
			return "", true, nil
		}
		v = s.Cart.CartItems
	case SliceShippingAddress:
		if s.Cart.ShippingAddress.IsZero() {
			return "", true, nil
		}
		v = s.Cart.ShippingAddress
	case SlicePaymentMethod:
		if s.Cart.PaymentMethod == PaymentNone {
			return "", true, nil
		}
		// stored raw, not as a JSON string
		return string(s.Cart.PaymentMethod), false, nil
	default:
		return "", false, fmt.Errorf("state: unknown slice %q", slice)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", false, fmt.Errorf("state: encode %s: %w", slice, err)
	}
	return string(b), false, nil
}

// decodeSlice applies a stored value for slice onto s.
func decodeSlice(s *State, slice Slice, value string) error {
	switch slice {
	case SliceUserInfo:
		var u UserInfo
		if err := json.Unmarshal([]byte(value), &u); err != nil {
			return err
		}
		s.UserInfo = &u
	case SliceCartItems:
		var items []CartItem
		if err := json.Unmarshal([]byte(value), &items); err != nil {
			return err
		}
		if items == nil {
			items = []CartItem{}
		}
		s.Cart.CartItems = items
	case SliceShippingAddress:
		var addr ShippingAddress
		if err := json.Unmarshal([]byte(value), &addr); err != nil {
			return err
		}
		s.Cart.ShippingAddress = addr
	case SlicePaymentMethod:
		s.Cart.PaymentMethod = PaymentMethod(value)
	default:
		return fmt.Errorf("unknown slice %q", slice)
	}
	return nil
}

// sliceChanged reports whether slice differs between prev and next.
func sliceChanged(prev, next State, slice Slice) bool {
	switch slice {
	case SliceUserInfo:
		return !reflect.DeepEqual(prev.UserInfo, next.UserInfo)
	case SliceCartItems:
		if len(prev.Cart.CartItems) == 0 && len(next.Cart.CartItems) == 0 {
			return false
		}
		return !reflect.DeepEqual(prev.Cart.CartItems, next.Cart.CartItems)
	case SliceShippingAddress:
		return prev.Cart.ShippingAddress != next.Cart.ShippingAddress
	case SlicePaymentMethod:
		return prev.Cart.PaymentMethod != next.Cart.PaymentMethod
	}
	return false
}
