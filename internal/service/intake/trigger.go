package intake

import "strings"

const (
	// bookingTrigger is the exact, case-sensitive substring the model emits
	// when it is ready to present availability. It is an inter-component
	// signal carried in free text, not a structured event.
	bookingTrigger = "offer you the following open slots"

	// slotPlaceholder is the literal token the slot list replaces.
	slotPlaceholder = "[SLOTS HERE]"
)

// DetectBookingIntent reports whether a reply asks for slot substitution.
// Isolated so the string match can later be swapped for a structured signal
// without touching the turn processor.
func DetectBookingIntent(text string) bool {
	return strings.Contains(text, bookingTrigger)
}

// SpliceSlots replaces every slotPlaceholder occurrence with the lines as a
// bulleted list. If the placeholder is absent the text comes back unchanged;
// the model skipping the placeholder despite the trigger is an accepted
// quirk, not an error.
func SpliceSlots(text string, lines []string) string {
	if len(lines) == 0 {
		return text
	}
	slotText := "\n* " + strings.Join(lines, "\n* ")
	return strings.ReplaceAll(text, slotPlaceholder, slotText)
}
