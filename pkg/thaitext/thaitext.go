// Package thaitext renders numbers, money amounts and dates as Thai
// text for printable clinic documents (receipts, certificates).
package thaitext

import (
	"fmt"
	"math"
	"strings"
	"time"
)

var digitWords = []string{"", "หนึ่ง", "สอง", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า"}

var positionWords = []string{"", "สิบ", "ร้อย", "พัน", "หมื่น", "แสน", "ล้าน"}

var monthNames = []string{"", "มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม"}

var dayNames = []string{"อาทิตย์", "จันทร์", "อังคาร", "พุธ", "พฤหัสบดี", "ศุกร์", "เสาร์"}

// NumberWords spells a non-negative integer in Thai, with the usual
// irregulars: unit 1 after another digit reads เอ็ด, tens digit 2 reads
// ยี่สิบ and tens digit 1 reads just สิบ.
func NumberWords(n int64) string {
	if n == 0 {
		return "ศูนย์"
	}

	var b strings.Builder
	s := fmt.Sprintf("%d", n)
	length := len(s)

	for i, c := range s {
		d := int(c - '0')
		pos := length - i - 1

		if d == 0 {
			continue
		}

		switch {
		case d == 1 && pos == 0 && length > 1:
			b.WriteString("เอ็ด")
		case d == 2 && pos == 1:
			b.WriteString("ยี่สิบ")
		case d == 1 && pos == 1:
			b.WriteString("สิบ")
		default:
			b.WriteString(digitWords[d])
			if pos < len(positionWords) {
				b.WriteString(positionWords[pos])
			}
		}
	}

	return b.String()
}

// BahtWords renders a money amount as Thai receipt text, e.g.
// "หนึ่งร้อยยี่สิบบาทห้าสิบสตางค์ถ้วน".
func BahtWords(amount float64) string {
	baht := int64(math.Floor(amount))
	satang := int64(math.Round((amount - float64(baht)) * 100))

	bahtText := NumberWords(baht)

	if satang > 0 {
		return fmt.Sprintf("%sบาท%sสตางค์ถ้วน", bahtText, NumberWords(satang))
	}
	return fmt.Sprintf("%sบาทถ้วน", bahtText)
}

// Date renders a date in Buddhist-era Thai long form, e.g.
// "วันจันทร์ ที่ 5 มกราคม พ.ศ. 2569".
func Date(t time.Time) string {
	dayName := dayNames[int(t.Weekday())]
	return fmt.Sprintf("วัน%s ที่ %d %s พ.ศ. %d", dayName, t.Day(), monthNames[int(t.Month())], t.Year()+543)
}

// MonthYear renders a month as "<Thai month name> <BE year>".
func MonthYear(year int, month time.Month) string {
	if month < time.January || month > time.December {
		return fmt.Sprintf("ไม่ทราบ %d", year+543)
	}
	return fmt.Sprintf("%s %d", monthNames[int(month)], year+543)
}

// FormatHN renders a legacy auto-generated clinic number, e.g. "HN-00016".
func FormatHN(n uint32) string {
	return fmt.Sprintf("HN-%05d", n)
}
