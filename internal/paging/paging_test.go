package paging

import "testing"

func TestPaginate(t *testing.T) {
	items := make([]int, 0, 95)
	for i := 0; i < 95; i++ {
		items = append(items, i)
	}

	p := Paginate(items, 1, 50)
	if len(p.Items) != 50 || p.Items[0] != 0 {
		t.Fatalf("page 1: len=%d first=%v", len(p.Items), p.Items[0])
	}
	if !p.HasNext || p.HasPrev {
		t.Fatalf("page 1: HasNext=%v HasPrev=%v", p.HasNext, p.HasPrev)
	}
	if p.Total != 95 {
		t.Fatalf("total = %d", p.Total)
	}

	p = Paginate(items, 2, 50)
	if len(p.Items) != 45 || p.Items[0] != 50 {
		t.Fatalf("page 2: len=%d first=%v", len(p.Items), p.Items[0])
	}
	if p.HasNext || !p.HasPrev {
		t.Fatalf("page 2: HasNext=%v HasPrev=%v", p.HasNext, p.HasPrev)
	}
}

func TestPaginate_Defaults(t *testing.T) {
	items := []string{"a", "b", "c"}

	// Non-positive page and page size fall back to defaults.
	p := Paginate(items, 0, 0)
	if p.Page != 1 || p.PageSize != 50 {
		t.Fatalf("defaults: page=%d size=%d", p.Page, p.PageSize)
	}
	if len(p.Items) != 3 {
		t.Fatalf("len = %d", len(p.Items))
	}
}

func TestPaginate_PastTheEnd(t *testing.T) {
	p := Paginate([]int{1, 2, 3}, 10, 10)
	if len(p.Items) != 0 {
		t.Fatalf("items = %v, want empty", p.Items)
	}
	if p.HasNext || !p.HasPrev {
		t.Fatalf("HasNext=%v HasPrev=%v", p.HasNext, p.HasPrev)
	}
}
