// Package apperr defines the domain error taxonomy. Every business-rule
// violation is an *Error carrying the HTTP status and a machine-readable
// code, translated to the JSON error body in one place.
package apperr

import (
	"errors"   // Error unwrapping
	"fmt"      // Message formatting
	"net/http" // HTTP status codes
)

// Machine-readable error codes returned in the error body
const (
	CodeAuthenticationFailed = "ERROR_403"  // Login failure
	CodeValidationFailed     = "ERROR_400"  // Request validation failure
	CodeAccessDenied         = "ERROR_403"  // Role check failure
	CodeInternal             = "ERROR_500"  // Unexpected failure
	CodeInvalidUser          = "ERROR_1000" // Malformed user input
	CodeUserNotFound         = "ERROR_1001" // User lookup failure
	CodeUserInUse            = "ERROR_1002" // User delete blocked
	CodeEmailInUse           = "ERROR_1003" // Email already registered
	CodeAddressNotFound      = "ERROR_2001" // Address lookup failure
	CodeAddressInUse         = "ERROR_2002" // Address delete blocked
	CodeInvalidCategory      = "ERROR_3000" // Malformed category input
	CodeCategoryNotFound     = "ERROR_3001" // Category lookup failure
	CodeCategoryInUse        = "ERROR_3002" // Category delete blocked
	CodeCategoryExists       = "ERROR_3003" // Duplicate category name
	CodeInvalidPet           = "ERROR_4000" // Malformed pet input
	CodePetNotFound          = "ERROR_4001" // Pet lookup failure
	CodePetAlreadySold       = "ERROR_4002" // Pet no longer available
	CodePetAlreadyInCart     = "ERROR_4003" // Pet already in the caller's cart
	CodeInvalidDiscount      = "ERROR_5000" // Invalid or expired discount code
	CodeDiscountNotFound     = "ERROR_5001" // Discount lookup failure
	CodeDiscountInUse        = "ERROR_5002" // Discount delete blocked
	CodeDiscountExists       = "ERROR_5003" // Duplicate discount code
	CodeCartItemNotFound     = "ERROR_6001" // Cart item lookup failure
	CodeCartNotFound         = "ERROR_6002" // User has no cart
	CodeCartEmpty            = "ERROR_6003" // Checkout on an empty cart
	CodeOrderAccessDenied    = "ERROR_7001" // Caller does not own the order
	CodeOrderNotFound        = "ERROR_7002" // Order lookup failure
	CodeInvalidPayment       = "ERROR_8001" // Missing or malformed payment fields
	CodeUnsupportedWallet    = "ERROR_8002" // Unknown e-wallet provider
	CodeUnsupportedPayment   = "ERROR_8003" // Unknown payment type
)

// Error is a domain error with a fixed HTTP status and machine code
type Error struct {
	Status  int    // HTTP status to respond with
	Code    string // Machine-readable error code
	Message string // Human-readable message
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// New builds a domain error
func New(status int, code, format string, args ...any) *Error {
	return &Error{Status: status, Code: code, Message: fmt.Sprintf(format, args...)}
}

// From extracts a domain error from err, or nil if err is not one
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Lookup failures

func UserNotFound(id uint) *Error {
	return New(http.StatusNotFound, CodeUserNotFound, "User not found with id: %d", id)
}

func UserNotFoundByEmail(email string) *Error {
	return New(http.StatusNotFound, CodeUserNotFound, "User not found with email: %s", email)
}

func PetNotFound(id uint) *Error {
	return New(http.StatusNotFound, CodePetNotFound, "Pet not found with id: %d", id)
}

func CategoryNotFound(id uint) *Error {
	return New(http.StatusNotFound, CodeCategoryNotFound, "Category not found with id: %d", id)
}

func DiscountNotFound(id uint) *Error {
	return New(http.StatusNotFound, CodeDiscountNotFound, "Discount not found with id: %d", id)
}

func AddressNotFound(id uint) *Error {
	return New(http.StatusNotFound, CodeAddressNotFound, "Address not found with id: %d", id)
}

func OrderNotFound(id uint) *Error {
	return New(http.StatusNotFound, CodeOrderNotFound, "Order not found with id: %d", id)
}

func CartNotFound(userID uint) *Error {
	return New(http.StatusNotFound, CodeCartNotFound, "Cart not found for user: %d", userID)
}

func CartItemNotFound(id uint) *Error {
	return New(http.StatusNotFound, CodeCartItemNotFound, "Cart item not found with id: %d", id)
}

// Conflicts and in-use rejections

func CategoryExists(name string) *Error {
	return New(http.StatusConflict, CodeCategoryExists, "Category with name '%s' already exists", name)
}

func CategoryInUse(name string, count int) *Error {
	return New(http.StatusConflict, CodeCategoryInUse,
		"Cannot delete category '%s' because it is used by %d pet(s)", name, count)
}

func UserInUse(message string) *Error {
	return New(http.StatusConflict, CodeUserInUse, "%s", message)
}

func EmailInUse(email string) *Error {
	return New(http.StatusConflict, CodeEmailInUse, "Email already in use: %s", email)
}

func AddressInUse(id uint) *Error {
	return New(http.StatusConflict, CodeAddressInUse,
		"Cannot delete address %d because it is referenced by an order", id)
}

func DiscountExists(code string) *Error {
	return New(http.StatusConflict, CodeDiscountExists, "Discount with code '%s' already exists", code)
}

func DiscountInUse(id uint) *Error {
	return New(http.StatusConflict, CodeDiscountInUse,
		"Cannot delete discount %d because it is referenced by an order", id)
}

func PetAlreadySold(id uint) *Error {
	return New(http.StatusConflict, CodePetAlreadySold, "Pet %d is already sold", id)
}

func PetAlreadyInCart(id uint) *Error {
	return New(http.StatusConflict, CodePetAlreadyInCart, "Pet %d is already in the cart", id)
}

// Business-rule failures

func CartEmpty(userID uint) *Error {
	return New(http.StatusBadRequest, CodeCartEmpty, "Cart is empty for user: %d", userID)
}

func InvalidDiscount() *Error {
	return New(http.StatusBadRequest, CodeInvalidDiscount, "Invalid or expired discount code")
}

func InvalidPayment(format string, args ...any) *Error {
	return New(http.StatusBadRequest, CodeInvalidPayment, format, args...)
}

func UnsupportedPaymentType(t string) *Error {
	return New(http.StatusBadRequest, CodeUnsupportedPayment, "Payment type not supported: %s", t)
}

func UnsupportedWalletType(t string) *Error {
	return New(http.StatusBadRequest, CodeUnsupportedWallet, "E-Wallet type not supported: %s", t)
}

func Invalid(code, format string, args ...any) *Error {
	return New(http.StatusBadRequest, code, format, args...)
}

// Auth failures

func AuthenticationFailed() *Error {
	return New(http.StatusUnauthorized, CodeAuthenticationFailed, "Invalid credentials")
}

func OrderAccessDenied(orderID uint) *Error {
	return New(http.StatusForbidden, CodeOrderAccessDenied, "Order %d does not belong to the caller", orderID)
}
