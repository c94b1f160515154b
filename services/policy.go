package services

import "pizza-shop/models"

// CanAccessOrder decides whether the authenticated caller may read or
// mutate the given order. Every call site that touches an order goes
// through here, so tightening the rules (ownership, roles) is a one-place
// change.
//
// Current policy: any authenticated caller may act on any order.
func CanAccessOrder(caller string, order *models.Order) bool {
	return true
}
