package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"bassMate/domain"
)

// hourPattern matches the first explicit hour in free text, either clock
// style ("5:20") or Korean style ("19시").
var hourPattern = regexp.MustCompile(`(\d{1,2})[:시]`)

// periodKeywords in matching priority order. The first category whose
// keyword appears anywhere in the text wins, regardless of where in the text
// the keyword sits. "오후 출발해서 새벽까지" therefore normalizes to 새벽.
var periodKeywords = []struct {
	label    string
	keywords []string
}{
	{domain.PeriodDawn, []string{"새벽", "동트", "일출", "이른"}},
	{domain.PeriodMorning, []string{"아침"}},
	{domain.PeriodLateMorning, []string{"오전"}},
	{domain.PeriodAfternoon, []string{"오후"}},
	{domain.PeriodNight, []string{"야간", "밤", "늦은"}},
}

// NormalizeTimePeriod maps a free-text time description onto one of the five
// canonical period labels. An explicit hour beats keywords. Returns nil when
// nothing can be extracted.
func NormalizeTimePeriod(text string) *string {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	if trimmed == "" || trimmed == "none" || trimmed == "정보 없음" {
		return nil
	}

	if m := hourPattern.FindStringSubmatch(trimmed); m != nil {
		hour, err := strconv.Atoi(m[1])
		if err == nil {
			return periodForHour(hour)
		}
	}

	for _, category := range periodKeywords {
		for _, kw := range category.keywords {
			if strings.Contains(trimmed, kw) {
				label := category.label
				return &label
			}
		}
	}

	return nil
}

func periodForHour(hour int) *string {
	var label string
	switch {
	case hour < 6:
		label = domain.PeriodDawn
	case hour < 11:
		label = domain.PeriodMorning
	case hour < 14:
		label = domain.PeriodLateMorning
	case hour < 19:
		label = domain.PeriodAfternoon
	default:
		label = domain.PeriodNight
	}
	return &label
}
