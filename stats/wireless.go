package stats

import "strings"

// DetectWireless filters names down to the ones that look like wireless
// adapters. Covers the common spellings: predictable names (wlp2s0), classic
// wlan0, macOS en0/en1 and the Windows "Wi-Fi" family. Order is preserved.
// An empty result means nothing on the system looks wireless.
func DetectWireless(names []string) []string {
	wireless := []string{}
	for _, name := range names {
		if looksWireless(name) {
			wireless = append(wireless, name)
		}
	}
	return wireless
}

func looksWireless(name string) bool {
	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "wl"):
		return true
	case lower == "en0" || lower == "en1":
		return true
	case strings.Contains(lower, "wi-fi"), strings.Contains(lower, "wifi"):
		return true
	}
	return false
}
