package dap

// UniqueNames fails with a BadSemanticsError naming the first variable, in
// declaration order, whose name an earlier sibling already uses.
func UniqueNames(vars []BaseType, owner, typeName string) error {
	seen := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		name := v.Name()
		if _, dup := seen[name]; dup {
			return BadSemanticsError{Owner: owner, TypeName: typeName, Name: name}
		}
		seen[name] = struct{}{}
	}
	return nil
}

// LongName returns the dotted path of v relative to the outermost Structure
// that encloses it. Resolving that path with Variable on the outermost
// Structure yields v again.
func LongName(v BaseType) string {
	name := v.Name()
	for p := v.Parent(); p != nil && p.Parent() != nil; p = p.Parent() {
		name = p.Name() + "." + name
	}
	return name
}
