package requiredness

// Row is the resolved requiredness of one declaration across contexts.
type Row struct {
	Name     string
	Required []bool
}

// Matrix resolves every declaration under every context, keeping the order
// of both inputs.
func Matrix(decls []Declaration, contexts []Context) ([]Row, error) {
	rows := make([]Row, len(decls))

	for i, d := range decls {
		rows[i] = Row{
			Name:     d.Name,
			Required: make([]bool, len(contexts)),
		}

		for j, ctx := range contexts {
			v, err := Resolve(d, ctx)
			if err != nil {
				return nil, err
			}
			rows[i].Required[j] = v
		}
	}

	return rows, nil
}
