package search

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopchannel/search/internal/domain"
)

func parseMarkup(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestFormatGeneral(t *testing.T) {
	record := domain.ProductRecord{
		ID:           "32987",
		RecordID:     "32987",
		ProductName:  "Slip-on leather shoes",
		RegularPrice: "3990",
	}

	first := FormatGeneral(record)
	second := FormatGeneral(record)

	assert.Equal(t, record, first)
	assert.Equal(t, first, second)
}

func TestFormatStorefront(t *testing.T) {
	record := domain.ProductRecord{
		ID:            "123",
		RecordID:      "REC001",
		ProductNumber: "121552",
		ProductName:   "เสื้อเชิ้ตผู้ชาย",
		ImageURI:      "https://example.com/image.jpg",
		ProductURI:    "https://example.com/product/123",
		RegularPrice:  "599",
		SalePrice:     "499",
		IsAvailable:   true,
	}

	suggestion := FormatStorefront(record)

	assert.Equal(t, "Product", suggestion.Type)
	assert.Equal(t, 121552, suggestion.ID)
	assert.Equal(t, "เสื้อเชิ้ตผู้ชาย", suggestion.Value)
	assert.Equal(t, "https://example.com/product/123", suggestion.URL)
	assert.Equal(t, "https://example.com/image.jpg", suggestion.Img)
	assert.NotEmpty(t, suggestion.Price)
}

func TestStorefrontID(t *testing.T) {
	tests := []struct {
		name          string
		productNumber string
		recordID      string
		want          any
	}{
		{name: "plain number", productNumber: "32987", recordID: "REC1", want: 32987},
		{name: "first space separated part wins", productNumber: "123 456", recordID: "REC2", want: 123},
		{name: "surrounding whitespace trimmed", productNumber: "  77  ", recordID: "REC3", want: 77},
		{name: "unparseable falls back to record id", productNumber: "121552*006", recordID: "REC4", want: "REC4"},
		{name: "empty falls back to record id", productNumber: "", recordID: "REC5", want: "REC5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := storefrontID(domain.ProductRecord{ProductNumber: tt.productNumber, RecordID: tt.recordID})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPriceHTML(t *testing.T) {
	t.Run("regular price markup", func(t *testing.T) {
		doc := parseMarkup(t, FormatPriceHTML("3990", "", true))

		amount := doc.Find("span.woocommerce-Price-amount.amount bdi")
		require.Equal(t, 1, amount.Length())
		assert.Contains(t, amount.Text(), "3,990.00")
		assert.Equal(t, 1, doc.Find("span.woocommerce-Price-currencySymbol").Length())
		assert.Contains(t, doc.Find("span.woocommerce-Price-currencySymbol").Text(), "฿")
	})

	t.Run("sale markup strikes regular price", func(t *testing.T) {
		doc := parseMarkup(t, FormatPriceHTML("3990", "2990", true))

		require.Equal(t, 1, doc.Find("del").Length())
		require.Equal(t, 1, doc.Find("ins").Length())
		assert.Contains(t, doc.Find("del bdi").Text(), "3,990.00")
		assert.Contains(t, doc.Find("ins bdi").Text(), "2,990.00")
		assert.Equal(t, 2, doc.Find("span.screen-reader-text").Length())
	})

	t.Run("sale at or above regular shows regular", func(t *testing.T) {
		doc := parseMarkup(t, FormatPriceHTML("5000", "5000", true))

		assert.Equal(t, 0, doc.Find("del").Length())
		assert.Contains(t, doc.Find("bdi").Text(), "5,000.00")
	})

	t.Run("unavailable product is out of stock", func(t *testing.T) {
		doc := parseMarkup(t, FormatPriceHTML("3990", "2990", false))
		assert.Equal(t, "Out of stock", doc.Find("bdi").Text())
	})

	t.Run("zero or missing regular price is out of stock", func(t *testing.T) {
		for _, regular := range []string{"0", ""} {
			doc := parseMarkup(t, FormatPriceHTML(regular, "", true))
			assert.Equal(t, "Out of stock", doc.Find("bdi").Text())
		}
	})

	t.Run("unparseable price is unavailable", func(t *testing.T) {
		doc := parseMarkup(t, FormatPriceHTML("call us", "", true))
		assert.Equal(t, "Price unavailable", doc.Find("bdi").Text())
	})
}
