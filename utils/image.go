// utils/image.go
package utils

import "encoding/base64"

// PNGDataURI คืนรูปในรูปแบบ data URI ให้ฝังใน JSON/HTML ได้เลย
// คืน nil เมื่อไม่มีรูป
func PNGDataURI(image []byte) *string {
	if len(image) == 0 {
		return nil
	}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(image)
	return &uri
}
