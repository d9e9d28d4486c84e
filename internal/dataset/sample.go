package dataset

// Sample constructs the embedded demonstration table: eight school
// wind-turbine installations. Useful for trying the pipeline without a
// CSV on hand. The table comes back already clean; no coordinates are
// included, so map rendering is skipped for it.
func Sample() *Table {
	type row struct {
		id, project, facility, state string
		capacity                     float64
		units                        int
	}
	rows := []row{
		{"T001", "Project_1", "Community Center", "OK", 1.733693, 1},
		{"T002", "Project_2", "Technical College", "NY", 1.374243, 4},
		{"T003", "Project_3", "K-12 School", "KS", 1.174680, 4},
		{"T004", "Project_4", "Community Center", "IA", 1.426943, 2},
		{"T005", "Project_5", "Community Center", "OK", 1.522472, 4},
		{"T006", "Project_6", "Technical College", "IA", 0.294048, 4},
		{"T007", "Project_7", "K-12 School", "TX", 0.987171, 2},
		{"T008", "Project_8", "K-12 School", "KS", 0.681184, 3},
	}
	t := &Table{Name: "sample"}
	for _, r := range rows {
		t.Records = append(t.Records, Record{
			ID:          r.id,
			ProjectName: r.project,
			Facility:    r.facility,
			State:       r.state,
			Capacity:    MW(r.capacity),
			Units:       r.units,
			HasUnits:    true,
		})
	}
	return t
}
