package thaitext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumberWords(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "ศูนย์"},
		{1, "หนึ่ง"},
		{10, "สิบ"},
		{11, "สิบเอ็ด"},
		{20, "ยี่สิบ"},
		{21, "ยี่สิบเอ็ด"},
		{100, "หนึ่งร้อย"},
		{101, "หนึ่งร้อยเอ็ด"},
		{115, "หนึ่งร้อยสิบห้า"},
		{2500, "สองพันห้าร้อย"},
		{60, "หกสิบ"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NumberWords(tc.n), "n=%d", tc.n)
	}
}

func TestBahtWords(t *testing.T) {
	assert.Equal(t, "หนึ่งร้อยยี่สิบบาทถ้วน", BahtWords(120))
	assert.Equal(t, "ห้าสิบบาทห้าสิบสตางค์ถ้วน", BahtWords(50.50))
	assert.Equal(t, "ศูนย์บาทถ้วน", BahtWords(0))
}

func TestDateUsesBuddhistEra(t *testing.T) {
	d := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.Local) // a Monday
	assert.Equal(t, "วันจันทร์ ที่ 5 มกราคม พ.ศ. 2569", Date(d))
}

func TestMonthYear(t *testing.T) {
	assert.Equal(t, "มกราคม 2567", MonthYear(2024, time.January))
}

func TestFormatHN(t *testing.T) {
	assert.Equal(t, "HN-00016", FormatHN(16))
}
