package repositories

import (
	"reflect"
	"testing"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/models"
)

func seqIDs(ids ...string) IDFunc {
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

func sampleLeads() []models.Lead {
	return []models.Lead{
		{ID: "L1", Name: "Aigerim", Status: models.LeadNew, Channel: models.ChannelWebsite},
		{ID: "L2", Name: "Marco", Status: models.LeadContacted, Channel: models.ChannelWhatsApp},
	}
}

func TestChangeStatusScenario(t *testing.T) {
	c := NewCollection("lead", sampleLeads())

	next, updated, err := ChangeStatus(c, "L1", models.LeadQualified)
	if err != nil {
		t.Fatalf("ChangeStatus: %v", err)
	}
	if updated.Status != models.LeadQualified {
		t.Errorf("updated status = %s", updated.Status)
	}
	got := next.Items()
	if got[0].ID != "L1" || got[0].Status != models.LeadQualified {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].ID != "L2" || got[1].Status != models.LeadContacted {
		t.Errorf("second = %+v", got[1])
	}
	// the old value is untouched
	if old, _ := c.Get("L1"); old.Status != models.LeadNew {
		t.Errorf("receiver mutated: %s", old.Status)
	}
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	c := NewCollection("lead", sampleLeads())
	next, _, err := ChangeStatus(c, "L1", models.LeadStatus("Archived"))
	if !apperrors.IsValidation(err) {
		t.Fatalf("err = %v, want validation", err)
	}
	if !reflect.DeepEqual(next.Items(), c.Items()) {
		t.Error("collection changed on invalid status")
	}
}

func TestUpdateMissingIDLeavesCollection(t *testing.T) {
	c := NewCollection("lead", sampleLeads())
	before := c.Items()

	next, _, err := c.Update("nope", func(l models.Lead) models.Lead {
		l.Name = "changed"
		return l
	})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
	if !reflect.DeepEqual(next.Items(), before) {
		t.Error("collection changed on missing id")
	}
}

func TestUpdateKeepsPositionAndID(t *testing.T) {
	c := NewCollection("lead", sampleLeads())
	name := "Marco Rossi"

	next, updated, err := c.Update("L2", func(l models.Lead) models.Lead {
		l = models.LeadPatch{Name: &name}.Apply(l)
		l.ID = "hijack"
		return l
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.ID != "L2" {
		t.Errorf("id changed to %s", updated.ID)
	}
	items := next.Items()
	if len(items) != 2 || items[1].ID != "L2" || items[1].Name != name {
		t.Fatalf("items = %+v", items)
	}
	if items[1].Status != models.LeadContacted || items[1].Channel != models.ChannelWhatsApp {
		t.Error("unspecified fields changed")
	}
}

func TestCreateAppendsWithFreshID(t *testing.T) {
	c := NewCollection("lead", sampleLeads())

	// the first two candidates collide with existing ids
	next, created, err := c.Create(models.Lead{Name: "Sven"}, seqIDs("L1", "L2", "L3"))
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != "L3" {
		t.Errorf("id = %q, want L3", created.ID)
	}
	items := next.Items()
	if len(items) != 3 || items[2].ID != "L3" {
		t.Errorf("not appended: %+v", items)
	}
	if c.Len() != 2 {
		t.Error("receiver grew")
	}
}

func TestCreateGivesUpOnConstantCollision(t *testing.T) {
	c := NewCollection("lead", sampleLeads())
	if _, _, err := c.Create(models.Lead{Name: "x"}, seqIDs("L1")); err == nil {
		t.Fatal("expected error when every id collides")
	}
}

func TestPrefixedIDUnique(t *testing.T) {
	gen := PrefixedID("B-")
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := gen()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestItemsAreDetached(t *testing.T) {
	tours := []models.Tour{{ID: "T1", Name: "City", Tags: []string{"walk"}}}
	c := NewCollection("tour", tours)
	tours[0].Tags[0] = "mutated"

	items := c.Items()
	if items[0].Tags[0] != "walk" {
		t.Error("collection shares the initial slice")
	}
	items[0].Tags[0] = "again"
	if got, _ := c.Get("T1"); got.Tags[0] != "walk" {
		t.Error("Items leaks internal state")
	}
}
