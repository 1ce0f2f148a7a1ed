package search

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"shopchannel/search/internal/domain"
)

// StorefrontSuggestion is the WooCommerce Flatsome theme suggestion format.
// ID carries an integer when the product number parses, otherwise the raw
// record identifier.
type StorefrontSuggestion struct {
	Type  string `json:"type"`
	ID    any    `json:"id"`
	Value string `json:"value"`
	URL   string `json:"url"`
	Img   string `json:"img"`
	Price string `json:"price"`
}

// FormatGeneral maps a record into the general API shape. The general shape
// is a pass-through of the normalized record fields.
func FormatGeneral(record domain.ProductRecord) domain.ProductRecord {
	return record
}

// FormatStorefront maps a record into the Flatsome suggestion shape.
func FormatStorefront(record domain.ProductRecord) StorefrontSuggestion {
	return StorefrontSuggestion{
		Type:  "Product",
		ID:    storefrontID(record),
		Value: record.ProductName,
		URL:   record.ProductURI,
		Img:   record.ImageURI,
		Price: FormatPriceHTML(record.RegularPrice, record.SalePrice, record.IsAvailable),
	}
}

// storefrontID derives the numeric theme id from the product number: the
// string is trimmed and, when it holds several space-separated parts, the
// first one is used. An unparseable number falls back to the raw record id.
func storefrontID(record domain.ProductRecord) any {
	trimmed := strings.TrimSpace(record.ProductNumber)
	if trimmed != "" {
		if first, _, _ := strings.Cut(trimmed, " "); first != "" {
			if id, err := strconv.Atoi(first); err == nil {
				return id
			}
		}
	}

	log.Warnf("Failed to parse product ID from %q, using record id instead", record.ProductNumber)
	return record.RecordID
}

const (
	outOfStockHTML       = `<span class="woocommerce-Price-amount amount"><bdi>Out of stock</bdi></span>`
	priceUnavailableHTML = `<span class="woocommerce-Price-amount amount"><bdi>Price unavailable</bdi></span>`
)

// FormatPriceHTML renders a price in the WooCommerce markup the Flatsome
// theme expects. This is a presentation policy only: it selects between
// sale and regular price on its own terms, independent of the range-filter
// price selection.
func FormatPriceHTML(regularPrice, salePrice string, isAvailable bool) string {
	regular, err := parseDisplayPrice(regularPrice)
	if err != nil {
		log.Errorf("Failed to format price %q: %v", regularPrice, err)
		return priceUnavailableHTML
	}
	sale, err := parseDisplayPrice(salePrice)
	if err != nil {
		log.Errorf("Failed to format price %q: %v", salePrice, err)
		return priceUnavailableHTML
	}

	if !isAvailable || regular == 0 {
		return outOfStockHTML
	}

	if sale > 0 && sale < regular {
		regularStr := formatAmount(regular)
		saleStr := formatAmount(sale)
		return fmt.Sprintf(
			`<del aria-hidden="true">%s</del> <span class="screen-reader-text">Original price was: %s&nbsp;&#3647;.</span><ins aria-hidden="true">%s</ins><span class="screen-reader-text">Current price is: %s&nbsp;&#3647;.</span>`,
			priceAmountHTML(regularStr), regularStr, priceAmountHTML(saleStr), saleStr)
	}

	return priceAmountHTML(formatAmount(regular))
}

func parseDisplayPrice(price string) (float64, error) {
	trimmed := strings.TrimSpace(price)
	if trimmed == "" {
		return 0, nil
	}
	return strconv.ParseFloat(trimmed, 64)
}

func formatAmount(amount float64) string {
	return message.NewPrinter(language.English).Sprintf("%.2f", amount)
}

func priceAmountHTML(amount string) string {
	return fmt.Sprintf(
		`<span class="woocommerce-Price-amount amount"><bdi>%s&nbsp;<span class="woocommerce-Price-currencySymbol">&#3647;</span></bdi></span>`,
		amount)
}
