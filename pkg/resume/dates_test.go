package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDateRange(t *testing.T) {
	cases := []struct {
		in                string
		start, end, rest string
	}{
		{"Jan 2020 - Present", "Jan 2020", "Present", ""},
		{"Software Engineer Jan 2020 - Present", "Jan 2020", "Present", "Software Engineer"},
		{"2018 - 2020 Acme", "2018", "2020", "Acme"},
		{"06/2019 to 08/2021", "06/2019", "08/2021", ""},
		{"Sept. 2018 – Jun 2020", "Sept. 2018", "Jun 2020", ""},
		{"Graduated May 2019", "", "May 2019", "Graduated"},
		{
			"Stanford University\nBS Computer Science 2015 - 2019",
			"2015", "2019", "Stanford University\nBS Computer Science",
		},
		{"no dates here", "", "", "no dates here"},
		{"", "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			start, end, rest := ExtractDateRange(tc.in)
			assert.Equal(t, tc.start, start, "start")
			assert.Equal(t, tc.end, end, "end")
			assert.Equal(t, tc.rest, rest, "rest")
		})
	}
}

func TestContainsDate(t *testing.T) {
	assert.True(t, containsDate("Acme Corp 2019"))
	assert.True(t, containsDate("Mar 2021 - Current"))
	assert.False(t, containsDate("Reduced latency by 40%"))
	assert.False(t, containsDate("Order 12345"))
}

func TestStripDateLeftovers(t *testing.T) {
	assert.Equal(t, "Engineer Acme", stripDateLeftovers("Engineer 2019 Acme"))
	assert.Equal(t, "Analyst", stripDateLeftovers("Analyst, Mar 2018"))
}
