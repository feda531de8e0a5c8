package format

// PermissionKind selects how a permission clause is printed.
type PermissionKind int

// Permission kinds.
const (
	PermissionNone PermissionKind = iota
	PermissionFull
	PermissionWhere
)

// Permission is the PERMISSIONS clause of a definition.
type Permission struct {
	Kind PermissionKind
	Expr string // condition for PermissionWhere, printed as is
}

// Where returns a conditional permission.
func Where(expr string) Permission {
	return Permission{Kind: PermissionWhere, Expr: expr}
}

func (pm Permission) print(p *Printer) {
	switch pm.Kind {
	case PermissionFull:
		p.keyword("full")
	case PermissionWhere:
		p.keyword("where")
		p.space()
		p.write(pm.Expr)
	default:
		p.keyword("none")
	}
}

// DefineModel is a DEFINE MODEL statement.
type DefineModel struct {
	Hash        string
	Name        string
	Version     string
	Comment     *string
	Permissions Permission
}

func (d DefineModel) print(p *Printer) {
	p.keyword("define model")
	p.write(" ml::")
	Ident(d.Name).print(p)
	p.write("<" + d.Version + ">")
	if d.Comment != nil {
		p.space()
		p.keyword("comment")
		p.space()
		Strand(*d.Comment).print(p)
	}
	done := p.clause()
	p.keyword("permissions")
	p.space()
	d.Permissions.print(p)
	done()
}

// String renders the statement on one line.
func (d DefineModel) String() string {
	return Format(d)
}
