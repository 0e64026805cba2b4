package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_JobPostingsByDepartment(t *testing.T) {
	tests := []struct {
		name string
		url  string
		text string
		want Label
	}{
		{
			name: "product role",
			url:  "https://boards.example.com/jobs/123",
			text: "We are hiring a Product Manager to lead roadmap planning.",
			want: ProductRole,
		},
		{
			name: "marketing role",
			url:  "https://example.com/careers/456",
			text: "Growth marketing lead for our brand team.",
			want: MarketingRole,
		},
		{
			name: "legal role",
			url:  "https://example.com/job/789",
			text: "Senior Counsel, commercial contracts and compliance.",
			want: LegalRole,
		},
		{
			name: "generic engineering posting",
			url:  "https://example.com/jobs/backend",
			text: "Backend engineer building distributed systems.",
			want: JobPosting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.url, tt.text))
		})
	}
}

func TestDetect_NonJobSources(t *testing.T) {
	assert.Equal(t, EngineeringBlog, Detect("https://example.com/blog/scaling-ml", ""))
	assert.Equal(t, GitHub, Detect("https://github.com/example", ""))
	assert.Equal(t, SubdomainAI, Detect("https://ai.example.com", ""))
	assert.Equal(t, SubdomainAI, Detect("https://research.example.com/papers", ""))
	assert.Equal(t, ManualRescore, Detect("https://example.com/about", "About our company."))
}
