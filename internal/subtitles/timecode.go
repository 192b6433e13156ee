package subtitles

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute

	// MaxTimestamp correspond à 99:59:59,999.
	MaxTimestamp int64 = 99*msPerHour + 59*msPerMinute + 59*msPerSecond + 999
)

// reTimestamp : format fixe hh:mm:ss,mmm, chaque champ complété par des zéros.
var reTimestamp = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{3})$`)

// ParseTimestamp convertit "hh:mm:ss,mmm" en millisecondes.
// Les minutes et secondes au-delà de 59 sont refusées.
func ParseTimestamp(s string) (int64, error) {
	m := reTimestamp.FindStringSubmatch(s)
	if m == nil {
		return 0, &FormatError{Value: s}
	}

	// les champs ne contiennent que des chiffres (regexp) : Atoi ne peut pas échouer
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	ss, _ := strconv.Atoi(m[3])
	ms, _ := strconv.Atoi(m[4])

	if mm > 59 {
		return 0, &FormatError{Value: s, Reason: "minutes > 59"}
	}
	if ss > 59 {
		return 0, &FormatError{Value: s, Reason: "secondes > 59"}
	}

	return int64((hh*3600+mm*60+ss)*msPerSecond + ms), nil
}

// FormatTimestamp est l'inverse de ParseTimestamp.
func FormatTimestamp(ms int64) (string, error) {
	if ms < 0 || ms > MaxTimestamp {
		return "", &RangeError{Ms: ms}
	}
	hour := ms / msPerHour
	ms %= msPerHour
	minute := ms / msPerMinute
	ms %= msPerMinute
	second := ms / msPerSecond
	ms %= msPerSecond
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hour, minute, second, ms), nil
}
