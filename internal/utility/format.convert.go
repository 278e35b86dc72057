package utility

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// String2ObjectID chuyển đổi chuỗi thành ObjectID.
// Trả về NilObjectID nếu chuỗi không đúng định dạng.
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}

// ObjectID2String chuyển đổi ObjectID thành chuỗi
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashes       = regexp.MustCompile(`-+`)
)

// GenerateSlug sinh slug từ tiêu đề tiếng Việt.
// Bỏ dấu, chuyển chữ thường, thay ký tự không hợp lệ bằng gạch ngang.
// Ví dụ: "Sản phẩm đẹp" -> "san-pham-dep"
func GenerateSlug(title string) string {
	// Bỏ dấu tiếng Việt: NFD decompose rồi loại bỏ các combining marks
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, title)
	if err != nil {
		normalized = title
	}

	// Chữ "đ" không phân rã qua NFD, thay riêng
	normalized = strings.ReplaceAll(normalized, "đ", "d")
	normalized = strings.ReplaceAll(normalized, "Đ", "D")

	normalized = strings.ToLower(normalized)
	normalized = slugInvalidChars.ReplaceAllString(normalized, "-")
	normalized = slugDashes.ReplaceAllString(normalized, "-")
	normalized = strings.Trim(normalized, "-")

	return normalized
}

// FormatVND định dạng số tiền theo chuẩn Việt Nam.
// Ví dụ: 1234567 -> "1.234.567 đ"
func FormatVND(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	result := b.String() + " đ"
	if negative {
		result = "-" + result
	}
	return result
}
