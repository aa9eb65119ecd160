package file

type Square struct{} // want `Square is a variant of closed type Shape and must be declared in the same file`

func (*Square) shape() {}

type Point struct{}

type Int struct{} // want `Int is a variant of closed type Lit and must be declared in the same file`

func (Int) expr() {}
func (Int) lit()  {}
