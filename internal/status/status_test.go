package status

import (
	"errors"
	"strings"
	"testing"

	apperrors "mfinvestor/internal/errors"
)

var underProcessOrderCodes = []string{
	"RECEIVED", "ORDER_2FA_PENDING", "BANK_TPV_PENDING", "PAYMENT_PENDING",
	"MATCH_PENDING", "QUEUED_FOR_RTA", "THRESHOLD_APPROVAL_PENDING", "SENT_TO_RTA",
	"RTA_REPROCESS", "RTA_RESP_RCVD", "SXP_2FA_PENDING", "PAUSED", "MATCHED", "REG",
}

func TestOrderStyle_UnderProcess(t *testing.T) {
	for _, dark := range []bool{false, true} {
		p := LightPalette
		if dark {
			p = DarkPalette
		}
		for _, code := range underProcessOrderCodes {
			for _, variant := range []string{code, strings.ToLower(code)} {
				got := OrderStyle(variant, dark)
				want := DisplayStyle{Label: "Under Process", Tone: ToneYellow, BackgroundColor: p.Yellow, TextColor: p.Black}
				if got != want {
					t.Errorf("OrderStyle(%q, %v) = %+v, want %+v", variant, dark, got, want)
				}
			}
		}
	}
}

func TestOrderStyle_Success(t *testing.T) {
	got := OrderStyle("active", false)
	want := DisplayStyle{Label: "Success", Tone: ToneGreen, BackgroundColor: LightPalette.Green, TextColor: LightPalette.White}
	if got != want {
		t.Errorf("OrderStyle(active) = %+v, want %+v", got, want)
	}
}

func TestOrderStyle_Failed(t *testing.T) {
	codes := []string{
		"RTA_REJECTED", "PLATFORM_REJECTED", "OPS_REJECTED", "UCC_REJECTED",
		"SXP_INVESTOR_CANC", "CANCELLED", "MANDATE_UNLINK", "AUTOCANCELLED", "EXPIRED",
	}
	for _, code := range codes {
		got := OrderStyle(code, true)
		want := DisplayStyle{Label: "Failed", Tone: ToneRed, BackgroundColor: DarkPalette.Red, TextColor: DarkPalette.White}
		if got != want {
			t.Errorf("OrderStyle(%q) = %+v, want %+v", code, got, want)
		}
	}
}

// Codes listed in both the success and failed groups resolve to Failed
// because that group is applied last. This pins the current behavior.
func TestOrderStyle_OverlappingGroupsResolveToFailed(t *testing.T) {
	for _, code := range []string{"DONE", "done", "UNITS_RTA_SETTLED", "MATURED", "SXP_ORD_TRIGGERED"} {
		got := OrderStyle(code, false)
		if got.Label != "Failed" || got.BackgroundColor != LightPalette.Red || got.TextColor != LightPalette.White {
			t.Errorf("OrderStyle(%q) = %+v, want Failed red/white", code, got)
		}
	}
}

func TestOrderStyle_DirectLookup(t *testing.T) {
	tests := []struct {
		code  string
		label string
		tone  Tone
	}{
		{"successful", "Successful", ToneGreen},
		{"SUCCESSFUL", "Successful", ToneGreen},
		{"pending", "Pending", ToneYellow},
		{"failed", "Failed", ToneRed},
		{" in_progress ", "In Progress", ToneYellow},
	}
	for _, tt := range tests {
		got := OrderStyle(tt.code, false)
		if got.Label != tt.label || got.Tone != tt.tone {
			t.Errorf("OrderStyle(%q) = %+v, want %s/%s", tt.code, got, tt.label, tt.tone)
		}
	}
}

func TestMandateStyle(t *testing.T) {
	tests := []struct {
		code  string
		label string
		tone  Tone
	}{
		{"INITIATED", "Under Process", ToneYellow},
		{"in_process_agency", "Under Process", ToneYellow},
		{"PRE_DEBIT_NOTIFICATION_SENT_SUCCESSFULLY", "Under Process", ToneYellow},
		{"SCAN_UPLOAD_PENDING", "Under Process", ToneYellow},
		{"INVESTOR_AUTH_AWAITED", "Pending Approval", ToneYellow},
		{"ACTIVE", "Success", ToneGreen},
		{"completed", "Success", ToneGreen},
		{"REJECTED", "Failed", ToneRed},
		{"CANCELLED", "Failed", ToneRed},
		{"auto_rejected", "Failed", ToneRed},
		{"approved", "Approved", ToneGreen},
		{"expired", "Expired", ToneRed},
	}
	for _, tt := range tests {
		got := MandateStyle(tt.code, false)
		if got.Label != tt.label || got.Tone != tt.tone {
			t.Errorf("MandateStyle(%q) = %+v, want %s/%s", tt.code, got, tt.label, tt.tone)
		}
		p := LightPalette
		wantText := p.White
		if tt.tone == ToneYellow {
			wantText = p.Black
		}
		if got.BackgroundColor != p.Background(tt.tone) || got.TextColor != wantText {
			t.Errorf("MandateStyle(%q) colors = %s/%s", tt.code, got.BackgroundColor, got.TextColor)
		}
	}
}

func TestUnknownCodes(t *testing.T) {
	for _, dark := range []bool{false, true} {
		p := LightPalette
		if dark {
			p = DarkPalette
		}
		want := DisplayStyle{Label: UnknownLabel, Tone: ToneRed, BackgroundColor: p.Red, TextColor: p.White}
		for _, code := range []string{"FOOBAR", "", "   "} {
			if got := OrderStyle(code, dark); got != want {
				t.Errorf("OrderStyle(%q, %v) = %+v, want %+v", code, dark, got, want)
			}
			if got := MandateStyle(code, dark); got != want {
				t.Errorf("MandateStyle(%q, %v) = %+v, want %+v", code, dark, got, want)
			}
		}
	}
}

func TestClassifierCustomPalette(t *testing.T) {
	c := NewClassifier(Palette{Yellow: "#FFFF00"}, Palette{})

	got := c.OrderStyle("RECEIVED", false)
	if got.BackgroundColor != "#FFFF00" {
		t.Errorf("background = %s, want override", got.BackgroundColor)
	}
	if got.TextColor != LightPalette.Black {
		t.Errorf("text = %s, want built-in black", got.TextColor)
	}
	if c.Palette(true) != DarkPalette {
		t.Errorf("dark palette should fall back to built-in")
	}
}

func TestClassifierStyle(t *testing.T) {
	c := NewClassifier(LightPalette, DarkPalette)

	if got := c.Style(DomainOrder, "RECEIVED", false); got.Label != "Under Process" {
		t.Errorf("order domain: %+v", got)
	}
	if got := c.Style(DomainMandate, "INVESTOR_AUTH_AWAITED", false); got.Label != "Pending Approval" {
		t.Errorf("mandate domain: %+v", got)
	}
	if got := c.Style(Domain("sip"), "ACTIVE", false); got.Label != UnknownLabel {
		t.Errorf("unknown domain: %+v", got)
	}
}

func TestParseDomain(t *testing.T) {
	if d, err := ParseDomain(" Order "); err != nil || d != DomainOrder {
		t.Errorf("ParseDomain(Order) = %v, %v", d, err)
	}
	if d, err := ParseDomain("MANDATE"); err != nil || d != DomainMandate {
		t.Errorf("ParseDomain(MANDATE) = %v, %v", d, err)
	}
	if _, err := ParseDomain("sip"); !errors.Is(err, apperrors.ErrUnknownDomain) {
		t.Errorf("ParseDomain(sip) error = %v", err)
	}
}

func TestCodes(t *testing.T) {
	codes := Codes(DomainOrder)
	for _, want := range append(underProcessOrderCodes, "DONE", "SUCCESSFUL") {
		found := false
		for _, c := range codes {
			if c == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Codes(order) missing %s", want)
		}
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("Codes(order) not sorted/unique at %d: %s, %s", i, codes[i-1], codes[i])
		}
	}

	// every listed code must classify to something other than Unknown
	for _, d := range []Domain{DomainOrder, DomainMandate} {
		for _, code := range Codes(d) {
			if NewClassifier(LightPalette, DarkPalette).Style(d, code, false).Label == UnknownLabel {
				t.Errorf("%s code %s classified as Unknown", d, code)
			}
		}
	}
	if Codes(Domain("sip")) != nil {
		t.Error("unknown domain should list no codes")
	}
}
