package browser

import (
	"testing"

	"github.com/fwd1990man/GMapImageCollect/internal/geo"
)

func TestMapURL(t *testing.T) {
	cases := []struct {
		coord geo.Coordinate
		zoom  int
		want  string
	}{
		{
			coord: geo.Coordinate{Lat: 40.7128, Long: -74.006},
			zoom:  18,
			want:  "https://www.google.com/maps/@40.7128,-74.006,18z/data=!3m1!1e3",
		},
		{
			// Whole-degree coordinates print without a decimal point.
			coord: geo.Coordinate{Lat: 10, Long: 20},
			zoom:  18,
			want:  "https://www.google.com/maps/@10,20,18z/data=!3m1!1e3",
		},
		{
			coord: geo.Coordinate{Lat: -33.8688, Long: 151.2093},
			zoom:  18,
			want:  "https://www.google.com/maps/@-33.8688,151.2093,18z/data=!3m1!1e3",
		},
	}

	for _, tc := range cases {
		got := MapURL("www.google.com", tc.coord, tc.zoom)
		if got != tc.want {
			t.Errorf("MapURL(%+v) = %s, want %s", tc.coord, got, tc.want)
		}
	}
}

func TestMapURLHost(t *testing.T) {
	got := MapURL("maps.google.de", geo.Coordinate{Lat: 52.52, Long: 13.405}, 18)
	want := "https://maps.google.de/maps/@52.52,13.405,18z/data=!3m1!1e3"
	if got != want {
		t.Errorf("MapURL = %s, want %s", got, want)
	}
}
