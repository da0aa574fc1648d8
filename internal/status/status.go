// Package status maps backend order and mandate status codes to display badges.
//
// Classification runs in two passes. The lower-cased code is first looked up in
// the domain table. The upper-cased code is then checked against grouped code
// sets, and every group that contains it replaces the result, so the last
// matching group wins. Codes known to neither pass render as "Unknown" in red.
package status

import (
	"fmt"
	"sort"
	"strings"

	apperrors "mfinvestor/internal/errors"
)

// Domain selects which status enumeration a code belongs to.
type Domain string

const (
	DomainOrder   Domain = "order"
	DomainMandate Domain = "mandate"
)

// ParseDomain parses a domain name case-insensitively.
func ParseDomain(s string) (Domain, error) {
	switch Domain(strings.ToLower(strings.TrimSpace(s))) {
	case DomainOrder:
		return DomainOrder, nil
	case DomainMandate:
		return DomainMandate, nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownDomain, s)
}

// UnknownLabel is shown for codes absent from every table.
const UnknownLabel = "Unknown"

// DisplayStyle is the rendered badge for a status code.
type DisplayStyle struct {
	Label           string `json:"label"`
	Tone            Tone   `json:"tone"`
	BackgroundColor Color  `json:"backgroundColor"`
	TextColor       Color  `json:"textColor"`
}

type entry struct {
	label string
	tone  Tone
}

// group re-classifies every member code.
type group struct {
	entry
	codes map[string]struct{}
}

func newGroup(label string, tone Tone, codes ...string) group {
	g := group{entry: entry{label: label, tone: tone}, codes: make(map[string]struct{}, len(codes))}
	for _, c := range codes {
		g.codes[c] = struct{}{}
	}
	return g
}

func (g group) has(code string) bool {
	_, ok := g.codes[code]
	return ok
}

var orderTable = map[string]entry{
	"received":                   {"Received", ToneYellow},
	"order_2fa_pending":          {"2FA Pending", ToneYellow},
	"bank_tpv_pending":           {"Bank Verification Pending", ToneYellow},
	"payment_pending":            {"Payment Pending", ToneYellow},
	"match_pending":              {"Match Pending", ToneYellow},
	"queued_for_rta":             {"Queued For RTA", ToneYellow},
	"threshold_approval_pending": {"Approval Pending", ToneYellow},
	"sent_to_rta":                {"Sent To RTA", ToneYellow},
	"rta_reprocess":              {"RTA Reprocessing", ToneYellow},
	"rta_resp_rcvd":              {"RTA Response Received", ToneYellow},
	"sxp_2fa_pending":            {"2FA Pending", ToneYellow},
	"paused":                     {"Paused", ToneYellow},
	"matched":                    {"Matched", ToneYellow},
	"reg":                        {"Registered", ToneYellow},
	"pending":                    {"Pending", ToneYellow},
	"in_progress":                {"In Progress", ToneYellow},
	"active":                     {"Active", ToneGreen},
	"done":                       {"Done", ToneGreen},
	"units_rta_settled":          {"Units Allotted", ToneGreen},
	"matured":                    {"Matured", ToneGreen},
	"sxp_ord_triggered":          {"Order Triggered", ToneGreen},
	"successful":                 {"Successful", ToneGreen},
	"completed":                  {"Completed", ToneGreen},
	"rta_rejected":               {"RTA Rejected", ToneRed},
	"platform_rejected":          {"Rejected", ToneRed},
	"ops_rejected":               {"Rejected", ToneRed},
	"ucc_rejected":               {"UCC Rejected", ToneRed},
	"sxp_investor_canc":          {"Cancelled By Investor", ToneRed},
	"cancelled":                  {"Cancelled", ToneRed},
	"mandate_unlink":             {"Mandate Unlinked", ToneRed},
	"autocancelled":              {"Auto Cancelled", ToneRed},
	"expired":                    {"Expired", ToneRed},
	"failed":                     {"Failed", ToneRed},
	"rejected":                   {"Rejected", ToneRed},
}

// DONE, UNITS_RTA_SETTLED, MATURED and SXP_ORD_TRIGGERED sit in both the
// success and the failed group. Failed is applied last and wins.
var orderGroups = []group{
	newGroup("Under Process", ToneYellow,
		"RECEIVED", "ORDER_2FA_PENDING", "BANK_TPV_PENDING", "PAYMENT_PENDING",
		"MATCH_PENDING", "QUEUED_FOR_RTA", "THRESHOLD_APPROVAL_PENDING", "SENT_TO_RTA",
		"RTA_REPROCESS", "RTA_RESP_RCVD", "SXP_2FA_PENDING", "PAUSED", "MATCHED", "REG"),
	newGroup("Success", ToneGreen,
		"ACTIVE", "DONE", "UNITS_RTA_SETTLED", "MATURED", "SXP_ORD_TRIGGERED"),
	newGroup("Failed", ToneRed,
		"RTA_REJECTED", "PLATFORM_REJECTED", "OPS_REJECTED", "UCC_REJECTED",
		"SXP_INVESTOR_CANC", "CANCELLED", "MANDATE_UNLINK", "AUTOCANCELLED", "EXPIRED",
		"DONE", "UNITS_RTA_SETTLED", "MATURED", "SXP_ORD_TRIGGERED"),
}

var mandateTable = map[string]entry{
	"initiated":                                {"Initiated", ToneYellow},
	"in_process_agency":                        {"With Agency", ToneYellow},
	"pre_debit_notification_sent_successfully": {"Pre-Debit Notified", ToneYellow},
	"scan_upload_pending":                      {"Scan Upload Pending", ToneYellow},
	"investor_auth_awaited":                    {"Awaiting Authorisation", ToneYellow},
	"pending":                                  {"Pending", ToneYellow},
	"active":                                   {"Active", ToneGreen},
	"completed":                                {"Completed", ToneGreen},
	"approved":                                 {"Approved", ToneGreen},
	"rejected":                                 {"Rejected", ToneRed},
	"cancelled":                                {"Cancelled", ToneRed},
	"auto_rejected":                            {"Auto Rejected", ToneRed},
	"failed":                                   {"Failed", ToneRed},
	"expired":                                  {"Expired", ToneRed},
}

var mandateGroups = []group{
	newGroup("Under Process", ToneYellow,
		"INITIATED", "IN_PROCESS_AGENCY", "PRE_DEBIT_NOTIFICATION_SENT_SUCCESSFULLY", "SCAN_UPLOAD_PENDING"),
	newGroup("Pending Approval", ToneYellow, "INVESTOR_AUTH_AWAITED"),
	newGroup("Success", ToneGreen, "ACTIVE", "COMPLETED"),
	newGroup("Failed", ToneRed, "REJECTED", "CANCELLED", "AUTO_REJECTED"),
}

// Classifier renders status codes with a light and a dark palette.
type Classifier struct {
	light Palette
	dark  Palette
}

// NewClassifier creates a classifier. Empty palette colors fall back to the
// built-in light and dark palettes.
func NewClassifier(light, dark Palette) *Classifier {
	return &Classifier{
		light: light.Merge(LightPalette),
		dark:  dark.Merge(DarkPalette),
	}
}

var defaultClassifier = NewClassifier(LightPalette, DarkPalette)

// OrderStyle classifies an order status code with the built-in palettes.
func OrderStyle(code string, dark bool) DisplayStyle {
	return defaultClassifier.OrderStyle(code, dark)
}

// MandateStyle classifies a mandate status code with the built-in palettes.
func MandateStyle(code string, dark bool) DisplayStyle {
	return defaultClassifier.MandateStyle(code, dark)
}

// OrderStyle classifies an order status code.
func (c *Classifier) OrderStyle(code string, dark bool) DisplayStyle {
	return c.render(classify(code, orderTable, orderGroups), dark)
}

// MandateStyle classifies a mandate status code.
func (c *Classifier) MandateStyle(code string, dark bool) DisplayStyle {
	return c.render(classify(code, mandateTable, mandateGroups), dark)
}

// Style classifies code within domain. Unknown domains render as Unknown.
func (c *Classifier) Style(domain Domain, code string, dark bool) DisplayStyle {
	switch domain {
	case DomainOrder:
		return c.OrderStyle(code, dark)
	case DomainMandate:
		return c.MandateStyle(code, dark)
	}
	return c.render(entry{label: UnknownLabel, tone: ToneRed}, dark)
}

// Palette returns the palette used for the given mode.
func (c *Classifier) Palette(dark bool) Palette {
	if dark {
		return c.dark
	}
	return c.light
}

func (c *Classifier) render(e entry, dark bool) DisplayStyle {
	p := c.Palette(dark)
	return DisplayStyle{
		Label:           e.label,
		Tone:            e.tone,
		BackgroundColor: p.Background(e.tone),
		TextColor:       p.Text(e.tone),
	}
}

func classify(code string, table map[string]entry, groups []group) entry {
	code = strings.TrimSpace(code)

	result, ok := table[strings.ToLower(code)]
	if !ok {
		result = entry{label: UnknownLabel, tone: ToneRed}
	}

	upper := strings.ToUpper(code)
	for _, g := range groups {
		if g.has(upper) {
			result = g.entry
		}
	}
	return result
}

// Codes lists every code the domain knows explicitly, upper-cased and sorted.
func Codes(domain Domain) []string {
	var (
		table  map[string]entry
		groups []group
	)
	switch domain {
	case DomainOrder:
		table, groups = orderTable, orderGroups
	case DomainMandate:
		table, groups = mandateTable, mandateGroups
	default:
		return nil
	}

	seen := make(map[string]struct{}, len(table))
	for code := range table {
		seen[strings.ToUpper(code)] = struct{}{}
	}
	for _, g := range groups {
		for code := range g.codes {
			seen[code] = struct{}{}
		}
	}

	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
