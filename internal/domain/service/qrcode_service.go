package service

// QRCodeService renders QR codes pointing customers at their order.
type QRCodeService interface {
	// GenerateOrderLookupQR returns a PNG encoding the order lookup URL.
	GenerateOrderLookupQR(orderNumber, email string) ([]byte, error)

	// OrderLookupURL returns the URL encoded in the QR code.
	OrderLookupURL(orderNumber, email string) string
}
