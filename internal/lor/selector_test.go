package lor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreTemplate(t *testing.T) {
	req := LetterRequest{Purpose: "PhD Program", University: "MIT", Program: "Computer Science"}

	tests := []struct {
		name     string
		template Template
		want     int
	}{
		{
			name:     "field in title and body",
			template: Template{Title: "Data Science Excellence", Body: "strong data science record"},
			want:     5,
		},
		{
			name:     "purpose in title and body",
			template: Template{Title: "PhD Program Reference", Body: "recommending for a phd program"},
			want:     5,
		},
		{
			name:     "program in body",
			template: Template{Title: "Generic", Body: "the Computer Science curriculum"},
			want:     2,
		},
		{
			name:     "no match",
			template: Template{Title: "Industry Readiness", Body: "workplace skills"},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreTemplate(tt.template, req, "data science"))
		})
	}
}

func TestSelectTemplate_OrderIndependent(t *testing.T) {
	req := LetterRequest{Purpose: "PhD Program", University: "MIT", Program: "AI"}
	winner := Template{ID: "t2", Title: "Data Science PhD Program Template", Body: "research focus"}
	catalog := []Template{
		{ID: "t1", Title: "Industry Readiness", Body: "workplace skills"},
		winner,
		{ID: "t3", Title: "Leadership & Character", Body: "soft skills"},
	}

	picked := SelectTemplate(catalog, req, "data science")
	require.NotNil(t, picked)
	assert.Equal(t, "t2", picked.ID)

	// Same winner regardless of catalog order.
	reordered := []Template{catalog[2], catalog[0], winner}
	picked = SelectTemplate(reordered, req, "data science")
	require.NotNil(t, picked)
	assert.Equal(t, "t2", picked.ID)
}

func TestSelectTemplate_TieKeepsCatalogOrder(t *testing.T) {
	req := LetterRequest{Purpose: "PhD Program", University: "MIT", Program: "AI"}
	catalog := []Template{
		{ID: "a", Title: "PhD Program Template", Body: ""},
		{ID: "b", Title: "PhD Program Template", Body: ""},
	}

	picked := SelectTemplate(catalog, req, "")
	require.NotNil(t, picked)
	assert.Equal(t, "a", picked.ID)
}

func TestSelectTemplate_FallsBackToDefault(t *testing.T) {
	req := LetterRequest{Purpose: "Masters", University: "CMU", Program: "Robotics"}
	catalog := []Template{
		{ID: "t1", Title: "Unrelated", Body: "nothing in common"},
		{ID: "t2", Title: "Also unrelated", Body: "still nothing", IsDefault: true},
	}

	picked := SelectTemplate(catalog, req, "mechatronics")
	require.NotNil(t, picked)
	assert.Equal(t, "t2", picked.ID)
}

func TestSelectTemplate_NoMatchNoDefault(t *testing.T) {
	req := LetterRequest{Purpose: "Masters", University: "CMU", Program: "Robotics"}
	catalog := []Template{
		{ID: "t1", Title: "Unrelated", Body: "nothing in common"},
	}

	assert.Nil(t, SelectTemplate(catalog, req, "mechatronics"))
}

func TestSelectTemplate_EmptyCatalog(t *testing.T) {
	assert.Nil(t, SelectTemplate(nil, LetterRequest{Purpose: "x"}, "y"))
}
