package file

//closed:union
type Shape interface{ shape() }

type Circle struct{}

func (Circle) shape() {}

//closed:union
type Expr interface{ expr() }

//closed:union
type Lit interface {
	expr()
	lit()
}
