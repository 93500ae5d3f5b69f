package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fieldware/fieldbill/internal/models"
)

// DefaultBusinessName is the fallback phrase used in share messages when no
// business name is configured. It is message text only: the sentinel must
// never be embedded in a payload's business-name field.
const DefaultBusinessName = "our company"

// The two kinds use distinct sentence templates with an identical pattern.
const (
	estimateMessageFormat = "Here's your estimate from %s: %s"
	invoiceMessageFormat  = "Here's your invoice from %s: %s"
)

// Builder constructs share URLs and messages for a fixed base origin,
// e.g. "https://fieldbill.app". The zero value is not useful; use New.
type Builder struct {
	baseURL string
}

// NewBuilder returns a Builder for the given base origin. A trailing slash
// on baseURL is tolerated.
func NewBuilder(baseURL string) Builder {
	return Builder{baseURL: strings.TrimRight(baseURL, "/")}
}

// URL assembles <base>/view/<kind>/<pathID>?d=<token> for an already
// projected payload. Most callers want the kind-specific helpers instead.
func (b Builder) URL(kind Kind, pathID string, p Payload) string {
	return fmt.Sprintf("%s/view/%s/%s?d=%s", b.baseURL, kind, url.PathEscape(pathID), Encode(p))
}

// EstimateURL builds the complete share URL for an estimate. The path uses
// the raw 8-character short id while the embedded payload carries the
// upper-cased form.
func (b Builder) EstimateURL(e *models.Estimate, customerName, businessName string) string {
	return b.URL(KindEstimate, estimatePathID(e.ID),
		ProjectEstimate(e, customerName, embeddedBusiness(businessName)))
}

// EstimateMessage wraps the estimate share URL in the customer-facing
// sentence. The message always names a business, falling back to
// DefaultBusinessName, but the fallback never enters the URL's payload.
func (b Builder) EstimateMessage(e *models.Estimate, customerName, businessName string) string {
	return fmt.Sprintf(estimateMessageFormat,
		displayBusiness(businessName), b.EstimateURL(e, customerName, businessName))
}

// InvoiceURL builds the complete share URL for an invoice. Both the path
// and the payload use the invoice number verbatim.
func (b Builder) InvoiceURL(in *models.Invoice, customerName, businessName string) string {
	return b.URL(KindInvoice, in.InvoiceNumber,
		ProjectInvoice(in, customerName, embeddedBusiness(businessName)))
}

// InvoiceMessage wraps the invoice share URL in the customer-facing sentence.
func (b Builder) InvoiceMessage(in *models.Invoice, customerName, businessName string) string {
	return fmt.Sprintf(invoiceMessageFormat,
		displayBusiness(businessName), b.InvoiceURL(in, customerName, businessName))
}

// embeddedBusiness is the single branch keeping the message/payload
// asymmetry explicit: a caller relying on the default phrase (empty name or
// the sentinel itself) gets no bn key in the payload.
func embeddedBusiness(name string) string {
	if name == DefaultBusinessName {
		return ""
	}
	return name
}

// displayBusiness is the name shown in message text.
func displayBusiness(name string) string {
	if name == "" {
		return DefaultBusinessName
	}
	return name
}
