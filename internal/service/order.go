package service

import (
	"time" // Payment and delivery timestamps

	"petstore/internal/apperr"   // Domain errors
	"petstore/internal/domain"   // Importing domain models
	"petstore/internal/ordernum" // Order number generation
	"petstore/internal/payment"  // Payment strategies

	"github.com/shopspring/decimal" // Exact decimal money values
	"github.com/sirupsen/logrus"    // Logging library
	"gorm.io/gorm"                  // GORM ORM library
)

// OrderService manages checkout, payment and order lifecycle
type OrderService struct {
	db         *gorm.DB           // Database handle
	discounts  *DiscountService   // Discount validation
	generator  ordernum.Generator // Order number source
	strategies *payment.Factory   // Payment method registry
}

// NewOrderService builds an OrderService
func NewOrderService(db *gorm.DB, discounts *DiscountService, generator ordernum.Generator, strategies *payment.Factory) *OrderService {
	return &OrderService{db: db, discounts: discounts, generator: generator, strategies: strategies}
}

// All returns every order
func (s *OrderService) All() ([]domain.Order, error) {
	var orders []domain.Order
	if err := s.db.Preload("Items").Preload("Delivery").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ByUser returns every order belonging to the user
func (s *OrderService) ByUser(userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	if err := s.db.Preload("Items").Preload("Delivery").Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ByID returns the order with the given id
func (s *OrderService) ByID(id uint) (*domain.Order, error) {
	var order domain.Order
	if err := s.db.Preload("Items.Pet").Preload("Delivery").First(&order, id).Error; err != nil {
		return nil, apperr.OrderNotFound(id)
	}
	return &order, nil
}

// IsOwnedBy reports whether the order belongs to the user
func (s *OrderService) IsOwnedBy(orderID, userID uint) bool {
	var count int64
	if err := s.db.Model(&domain.Order{}).Where("id = ? AND user_id = ?", orderID, userID).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

// Checkout converts the user's cart into a PLACED order. The cart must
// exist and be non-empty, and every pet in it must still be AVAILABLE; a
// valid discount code reduces the total by its percentage. The cart is
// deleted on success. Everything runs in one transaction, so a failed
// availability check aborts without a partial order.
func (s *OrderService) Checkout(userID uint, discountCode string) (*domain.Order, error) {
	var created *domain.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart domain.Cart // The user's cart with items
		if err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			return apperr.CartNotFound(userID)
		}
		if len(cart.Items) == 0 {
			return apperr.CartEmpty(userID)
		}
		order := domain.Order{
			OrderNumber: s.generator.Generate(), // Assign a generated order number
			UserID:      userID,                 // Buyer
			Status:      domain.OrderPlaced,     // Orders start PLACED
		}
		total := decimal.Zero // Sum of the captured item prices
		for _, item := range cart.Items {
			total = total.Add(item.Price)
		}
		// Apply the discount and snapshot its values onto the order, so
		// later edits to the discount never change historical orders
		if discountCode != "" {
			discount, err := s.discounts.Validate(discountCode)
			if err != nil {
				return err
			}
			amount := total.Mul(discount.Percentage).Div(decimal.NewFromInt(100)).Round(2)
			total = total.Sub(amount)
			order.DiscountID = &discount.ID
			order.DiscountCode = discount.Code
			pct := discount.Percentage
			order.DiscountPercentage = &pct
			order.DiscountAmount = &amount
		}
		order.TotalAmount = total
		// Re-check availability at checkout time to catch buyers racing on
		// the same pet, and snapshot the cart items into order items
		for _, item := range cart.Items {
			var available int64
			if err := tx.Model(&domain.Pet{}).
				Where("id = ? AND status = ?", item.PetID, domain.PetAvailable).
				Count(&available).Error; err != nil {
				return err
			}
			if available == 0 {
				return apperr.PetAlreadySold(item.PetID)
			}
			order.Items = append(order.Items, domain.OrderItem{
				PetID: item.PetID, // Pet reference
				Price: item.Price, // Price captured when the pet was carted
			})
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		// Empty the cart after checkout
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&domain.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&cart).Error; err != nil {
			return err
		}
		if err := writeAudit(tx, "Order", order.ID, userID, domain.AuditCreateOrder,
			"", string(domain.OrderPlaced)); err != nil {
			return err
		}
		created = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Log the placed order
	logrus.WithFields(logrus.Fields{
		"user_id":      userID,              // Buyer
		"order_id":     created.ID,          // New order
		"order_number": created.OrderNumber, // Generated number
		"total":        created.TotalAmount, // Total after discount
	}).Info("Order placed")
	return created, nil
}

// Pay processes a payment for a PLACED order: the strategy for the request's
// payment type validates the method-specific fields, the payment record is
// stored, every pet on the order is marked SOLD through a status-guarded
// update, the order becomes APPROVED with its addresses resolved, and a
// PENDING delivery is created.
func (s *OrderService) Pay(orderID uint, req *payment.Request) (*domain.Payment, error) {
	strategy, err := s.strategies.Strategy(req.PaymentType)
	if err != nil {
		return nil, err
	}
	if err := strategy.Validate(req); err != nil {
		return nil, err
	}
	var paid *domain.Payment
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var order domain.Order // The order being paid
		if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
			return apperr.OrderNotFound(orderID)
		}
		// Only PLACED orders accept payment. There is no exit from
		// CANCELLED or DELIVERED, and APPROVED orders are already paid.
		if order.Status != domain.OrderPlaced {
			return apperr.Invalid(apperr.CodeValidationFailed, "Cannot pay for a %s order", order.Status)
		}
		pay := domain.Payment{
			OrderID: order.ID,               // Order reference
			Amount:  order.TotalAmount,      // Charge the order total
			Type:    req.PaymentType,        // Method used
			Status:  domain.PaymentSuccess,  // Strategies validated, mark success
			PaidAt:  time.Now().UnixMilli(), // Payment timestamp
		}
		strategy.Process(&pay, req) // Stamp the method-specific note
		if err := tx.Create(&pay).Error; err != nil {
			return err
		}
		// Mark every pet SOLD and hand it to the buyer. The status guard in
		// the WHERE clause makes the transition atomic; a pet sold by a
		// concurrent payment rolls the whole transaction back.
		for _, item := range order.Items {
			res := tx.Model(&domain.Pet{}).
				Where("id = ? AND status = ?", item.PetID, domain.PetAvailable).
				Updates(map[string]any{"status": domain.PetSold, "owner_id": order.UserID})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.PetAlreadySold(item.PetID)
			}
			if err := writeAudit(tx, "Pet", item.PetID, order.UserID, domain.AuditChangePetStatus,
				string(domain.PetAvailable), string(domain.PetSold)); err != nil {
				return err
			}
		}
		var shipping domain.Address // Resolve the shipping address
		if err := tx.Where("id = ? AND user_id = ?", req.ShippingAddressID, order.UserID).First(&shipping).Error; err != nil {
			return apperr.AddressNotFound(req.ShippingAddressID)
		}
		billingID := shipping.ID // Billing defaults to shipping
		if req.BillingAddressID != nil {
			var billing domain.Address
			if err := tx.Where("id = ? AND user_id = ?", *req.BillingAddressID, order.UserID).First(&billing).Error; err != nil {
				return apperr.AddressNotFound(*req.BillingAddressID)
			}
			billingID = billing.ID
		}
		order.Status = domain.OrderApproved
		order.ShippingAddressID = &shipping.ID
		order.BillingAddressID = &billingID
		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		delivery := domain.Delivery{
			OrderID: order.ID,               // Order reference
			Name:    shipping.FullName,      // Recipient snapshot
			Phone:   shipping.PhoneNumber,   // Contact snapshot
			Address: shipping.FullAddress(), // Address snapshot
			Status:  domain.DeliveryPending, // Deliveries start PENDING
		}
		if err := tx.Create(&delivery).Error; err != nil {
			return err
		}
		if err := writeAudit(tx, "Order", order.ID, order.UserID, domain.AuditCheckoutOrder,
			string(domain.OrderPlaced), string(domain.OrderApproved)); err != nil {
			return err
		}
		paid = &pay
		return nil
	})
	if err != nil {
		// Log the failed payment with context
		logrus.WithFields(logrus.Fields{
			"order_id": orderID,            // Order being paid
			"type":     req.PaymentType,    // Method used
			"error":    err.Error(),        // Failure reason
		}).Error("Payment failed")
		return nil, err
	}
	// Log the approved payment
	logrus.WithFields(logrus.Fields{
		"order_id":   orderID,     // Order being paid
		"payment_id": paid.ID,     // New payment
		"type":       paid.Type,   // Method used
		"amount":     paid.Amount, // Amount charged
	}).Info("Payment processed")
	return paid, nil
}

// Cancel soft-cancels an order. Cancelling an already cancelled order is a
// no-op; delivered orders cannot be cancelled.
func (s *OrderService) Cancel(orderID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var order domain.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return apperr.OrderNotFound(orderID)
		}
		if order.Status == domain.OrderDelivered {
			return apperr.Invalid(apperr.CodeValidationFailed, "Cannot cancel a delivered order")
		}
		if order.Status == domain.OrderCancelled {
			return nil // Already cancelled, nothing to do
		}
		previous := order.Status
		order.Status = domain.OrderCancelled
		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		return writeAudit(tx, "Order", order.ID, order.UserID, domain.AuditCancelOrder,
			string(previous), string(domain.OrderCancelled))
	})
}

// Delete soft-deletes an order by marking it CANCELLED. The row is kept so
// order history and audit entries stay intact.
func (s *OrderService) Delete(orderID uint) error {
	return s.Cancel(orderID)
}

// UpdateDeliveryStatus moves an order's delivery to the given status.
// SHIPPED stamps the shipment time; DELIVERED stamps the delivery time and
// marks the order itself DELIVERED.
func (s *OrderService) UpdateDeliveryStatus(orderID uint, status domain.DeliveryStatus, when time.Time) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var order domain.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return apperr.OrderNotFound(orderID)
		}
		var delivery domain.Delivery // The order's delivery record
		if err := tx.Where("order_id = ?", orderID).First(&delivery).Error; err != nil {
			return apperr.Invalid(apperr.CodeValidationFailed, "Order %d has no delivery", orderID)
		}
		previous := delivery.Status
		millis := when.UnixMilli()
		switch status {
		case domain.DeliveryShipped:
			delivery.Status = domain.DeliveryShipped
			delivery.ShippedAt = &millis
		case domain.DeliveryDelivered:
			delivery.Status = domain.DeliveryDelivered
			delivery.DeliveredAt = &millis
			order.Status = domain.OrderDelivered // Delivery completion closes the order
			if err := tx.Save(&order).Error; err != nil {
				return err
			}
		case domain.DeliveryPending:
			delivery.Status = domain.DeliveryPending
		default:
			return apperr.Invalid(apperr.CodeValidationFailed, "Unknown delivery status: %s", status)
		}
		if err := tx.Save(&delivery).Error; err != nil {
			return err
		}
		return writeAudit(tx, "Order", order.ID, order.UserID, domain.AuditUpdateDeliveryStatus,
			string(previous), string(delivery.Status))
	})
}
