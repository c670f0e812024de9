package season

import "testing"

func TestResolve(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		q    Query
		want Window
	}{
		{
			name: "no filter",
			q:    Query{},
			want: Window{Label: "All seasons"},
		},
		{
			name: "single year",
			q:    Query{Year: 2023},
			want: Window{Start: "2023-01-01", End: "2023-12-31", Label: "Season 2023"},
		},
		{
			name: "year overrides range",
			q:    Query{Year: 2023, From: 2000, To: 2010},
			want: Window{Start: "2023-01-01", End: "2023-12-31", Label: "Season 2023"},
		},
		{
			name: "range",
			q:    Query{From: 2021, To: 2023},
			want: Window{Start: "2021-01-01", End: "2023-12-31", Label: "Seasons 2021-2023"},
		},
		{
			name: "only from mirrors",
			q:    Query{From: 2022},
			want: Window{Start: "2022-01-01", End: "2022-12-31", Label: "Season 2022"},
		},
		{
			name: "only to mirrors",
			q:    Query{To: 2022},
			want: Window{Start: "2022-01-01", End: "2022-12-31", Label: "Season 2022"},
		},
		{
			name: "inverted range swaps",
			q:    Query{From: 2024, To: 2020},
			want: Window{Start: "2020-01-01", End: "2024-12-31", Label: "Seasons 2020-2024"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Resolve(tc.q)
			if got != tc.want {
				t.Fatalf("Resolve(%+v) = %+v, want %+v", tc.q, got, tc.want)
			}
		})
	}
}

func TestWindowActive(t *testing.T) {
	t.Parallel()

	if (Window{Label: "All seasons"}).Active() {
		t.Fatalf("unbounded window must not be active")
	}
	if !(Window{Start: "2023-01-01", End: "2023-12-31"}).Active() {
		t.Fatalf("bounded window must be active")
	}
}
