// Package qrcode renders QR codes as PNG bytes or data URIs and builds the
// wa.me chat links the site encodes in them.
//
//	link, err := qrcode.WhatsAppLink("20", "01208777757", "Hello")
//	png, err := qrcode.Generate(link, 256)
//
// Errors are sentinels comparable with errors.Is.
package qrcode
