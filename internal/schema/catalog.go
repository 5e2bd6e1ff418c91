package schema

func intPK(name string) Column {
	return Column{Name: name, Kind: KindInt}
}

func text(name string, maxLen int, required bool) Column {
	return Column{Name: name, Kind: KindText, MaxLen: maxLen, Required: required, Nullable: !required}
}

func ref(name string) Column {
	return Column{Name: name, Kind: KindInt, Nullable: true}
}

// CodeTables is the set of lookup tables editable from the settings screen.
func CodeTables() *Catalog {
	return MustCatalog(
		Table{
			Name:       "code_units",
			PrimaryKey: intPK("id"),
			Columns:    []Column{text("unit_name", 150, true)},
		},
		Table{
			Name:       "code_ranks",
			PrimaryKey: intPK("id"),
			Columns:    []Column{text("rank_name", 100, true)},
		},
		Table{
			Name:       "code_divisions",
			PrimaryKey: intPK("division_id"),
			Columns:    []Column{text("division_name", 150, true)},
		},
		Table{
			Name:       "code_stations",
			PrimaryKey: intPK("station_id"),
			Columns: []Column{
				text("station_name", 150, true),
				ref("division_id"),
				ref("unit_id"),
			},
		},
		Table{
			Name:       "code_categories",
			PrimaryKey: intPK("id"),
			Columns:    []Column{text("category_name", 100, true)},
		},
		Table{
			Name:       "code_device_types",
			PrimaryKey: intPK("id"),
			Columns: []Column{
				text("device_short_name", 20, true),
				text("device_name", 100, true),
				ref("category_id"),
			},
		},
		Table{
			Name:       "code_brand_name",
			PrimaryKey: intPK("id"),
			Columns:    []Column{text("brand_name", 100, true)},
		},
		Table{
			Name:       "code_models",
			PrimaryKey: intPK("id"),
			Columns: []Column{
				text("model_name", 150, true),
				ref("device_types_id"),
				ref("brand_id"),
			},
		},
		Table{
			Name:       "code_vendors",
			PrimaryKey: intPK("id"),
			Columns: []Column{
				text("vendor_name", 150, true),
				text("contact_number", 30, false),
				text("email", 150, false),
				text("address", 255, false),
			},
		},
		Table{
			Name:       "code_codetable",
			PrimaryKey: intPK("id"),
			Columns: []Column{
				text("table_name", 64, true),
				text("display_name", 100, true),
			},
			ReadOnly: true,
		},
	)
}
