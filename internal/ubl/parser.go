// Package ubl parses UBL Invoice-2 (e-Factura) XML documents. Unlike the
// heuristic text path, this parser is strict: UBL input is machine-generated,
// so any structural or numeric problem is a real error and surfaces as a
// single descriptive failure.
package ubl

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"solarops/internal/domain"
)

// Canonical UBL Invoice-2 namespaces. Documents using other namespaces do
// not bind to the struct tags below and yield empty fields.
const (
	nsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	nsCAC     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	nsCBC     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

type ublPartyName struct {
	Name string `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2 Name"`
}

type ublPartyTaxScheme struct {
	CompanyID string `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2 CompanyID"`
}

type ublParty struct {
	PartyName      ublPartyName      `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2 PartyName"`
	PartyTaxScheme ublPartyTaxScheme `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2 PartyTaxScheme"`
}

type ublPartyWrapper struct {
	Party ublParty `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2 Party"`
}

type ublItemID struct {
	ID string `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2 ID"`
}

type ublItem struct {
	Name     string    `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2 Name"`
	SellerID ublItemID `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2 SellersItemIdentification"`
}

type ublPrice struct {
	PriceAmount string `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2 PriceAmount"`
}

type ublInvoiceLine struct {
	InvoicedQuantity    string   `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2 InvoicedQuantity"`
	LineExtensionAmount string   `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2 LineExtensionAmount"`
	Item                ublItem  `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2 Item"`
	Price               ublPrice `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2 Price"`
}

type ublTaxTotal struct {
	TaxAmount string `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2 TaxAmount"`
}

type ublMonetaryTotal struct {
	PayableAmount string `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2 PayableAmount"`
}

type ublInvoice struct {
	XMLName              xml.Name         `xml:"urn:oasis:names:specification:ubl:schema:xsd:Invoice-2 Invoice"`
	ID                   string           `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2 ID"`
	IssueDate            string           `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2 IssueDate"`
	DocumentCurrencyCode string           `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2 DocumentCurrencyCode"`
	SupplierParty        ublPartyWrapper  `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2 AccountingSupplierParty"`
	CustomerParty        ublPartyWrapper  `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2 AccountingCustomerParty"`
	TaxTotals            []ublTaxTotal    `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2 TaxTotal"`
	LegalMonetaryTotal   ublMonetaryTotal `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2 LegalMonetaryTotal"`
	InvoiceLines         []ublInvoiceLine `xml:"urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2 InvoiceLine"`
}

// Parse reads a UBL invoice from r and returns the extracted invoice data.
func Parse(r io.Reader) (*domain.InvoiceData, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ubl: reading invoice: %w", err)
	}

	if err := rejectDTD(data); err != nil {
		return nil, fmt.Errorf("ubl: %w", err)
	}

	var inv ublInvoice
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	if err := dec.Decode(&inv); err != nil {
		return nil, fmt.Errorf("ubl: parsing invoice xml: %w", err)
	}

	result := domain.NewInvoiceData()
	result.InvoiceNumber = strings.TrimSpace(inv.ID)
	result.InvoiceDate = strings.TrimSpace(inv.IssueDate)
	result.SupplierName = strings.TrimSpace(inv.SupplierParty.Party.PartyName.Name)
	result.SupplierTaxID = strings.TrimSpace(inv.SupplierParty.Party.PartyTaxScheme.CompanyID)
	result.CustomerName = strings.TrimSpace(inv.CustomerParty.Party.PartyName.Name)
	result.CustomerTaxID = strings.TrimSpace(inv.CustomerParty.Party.PartyTaxScheme.CompanyID)
	if code := strings.TrimSpace(inv.DocumentCurrencyCode); code != "" {
		result.Currency = code
	}

	if result.TotalAmount, err = parseDecimal(inv.LegalMonetaryTotal.PayableAmount, "payable amount"); err != nil {
		return nil, fmt.Errorf("ubl: %w", err)
	}
	if len(inv.TaxTotals) > 0 {
		if result.TaxAmount, err = parseDecimal(inv.TaxTotals[0].TaxAmount, "tax amount"); err != nil {
			return nil, fmt.Errorf("ubl: %w", err)
		}
	}

	for i, line := range inv.InvoiceLines {
		item := domain.LineItem{
			Description: strings.TrimSpace(line.Item.Name),
			SKU:         strings.TrimSpace(line.Item.SellerID.ID),
		}
		if item.Quantity, err = parseDecimal(line.InvoicedQuantity, "quantity"); err != nil {
			return nil, fmt.Errorf("ubl: invoice line %d: %w", i+1, err)
		}
		if item.UnitPrice, err = parseDecimal(line.Price.PriceAmount, "unit price"); err != nil {
			return nil, fmt.Errorf("ubl: invoice line %d: %w", i+1, err)
		}
		if item.TotalPrice, err = parseDecimal(line.LineExtensionAmount, "line total"); err != nil {
			return nil, fmt.Errorf("ubl: invoice line %d: %w", i+1, err)
		}
		result.Items = append(result.Items, item)
	}

	return result, nil
}

// rejectDTD refuses any document carrying a DTD. encoding/xml never resolves
// external entities, but an explicit rejection keeps XXE attempts from being
// half-parsed with unresolved references.
func rejectDTD(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("scanning invoice xml: %w", err)
		}
		if _, ok := tok.(xml.Directive); ok {
			return errors.New("document type definitions are not allowed")
		}
	}
}

// parseDecimal converts an amount element's text to a float. A missing
// element (empty text) is zero; unparsable text is an error.
func parseDecimal(s, field string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return v, nil
}
