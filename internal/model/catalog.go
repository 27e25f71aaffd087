package model

// Catalog bundles the material and machine references an analysis run
// selects from: the built-in seed data plus any user additions.
type Catalog struct {
	Materials []MaterialProfile `json:"materials"`
	Machines  []MachineSpec     `json:"machines"`
}

// DefaultCatalog returns the built-in reference data.
func DefaultCatalog() Catalog {
	return Catalog{
		Materials: DefaultMaterials(),
		Machines:  DefaultMachines(),
	}
}

// Material looks up a material by name or grade.
func (c Catalog) Material(name string) (MaterialProfile, error) {
	return FindMaterial(c.Materials, name)
}

// Machine looks up a machine by name.
func (c Catalog) Machine(name string) (MachineSpec, error) {
	return FindMachine(c.Machines, name)
}
