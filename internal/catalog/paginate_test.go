package catalog

import "testing"

func TestPaginate(t *testing.T) {
	items := make([]int, 47)
	for i := range items {
		items[i] = i + 1
	}

	tests := []struct {
		name       string
		pageSize   int
		page       int
		wantLen    int
		wantPage   int
		wantPages  int
		wantFirst  int
	}{
		{"first page", 10, 1, 10, 1, 5, 1},
		{"middle page", 10, 3, 10, 3, 5, 21},
		{"short last page", 10, 5, 7, 5, 5, 41},
		{"page past end clamps", 10, 99, 7, 5, 5, 41},
		{"page below one clamps", 10, 0, 10, 1, 5, 1},
		{"exact fit", 47, 1, 47, 1, 1, 1},
		{"size below one treated as one", 0, 1, 1, 1, 47, 1},
	}
	for _, tt := range tests {
		got := Paginate(items, tt.pageSize, tt.page)
		if len(got.Items) != tt.wantLen {
			t.Errorf("%s: len = %d, want %d", tt.name, len(got.Items), tt.wantLen)
		}
		if got.Page != tt.wantPage {
			t.Errorf("%s: page = %d, want %d", tt.name, got.Page, tt.wantPage)
		}
		if got.TotalPages != tt.wantPages {
			t.Errorf("%s: total pages = %d, want %d", tt.name, got.TotalPages, tt.wantPages)
		}
		if got.TotalItems != 47 {
			t.Errorf("%s: total items = %d, want 47", tt.name, got.TotalItems)
		}
		if len(got.Items) > 0 && got.Items[0] != tt.wantFirst {
			t.Errorf("%s: first item = %d, want %d", tt.name, got.Items[0], tt.wantFirst)
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	got := Paginate([]int(nil), 10, 1)
	if len(got.Items) != 0 {
		t.Errorf("len = %d, want 0", len(got.Items))
	}
	if got.Page != 1 || got.TotalPages != 1 {
		t.Errorf("page = %d, total pages = %d, want 1 and 1", got.Page, got.TotalPages)
	}
	if got.TotalItems != 0 {
		t.Errorf("total items = %d, want 0", got.TotalItems)
	}
}
