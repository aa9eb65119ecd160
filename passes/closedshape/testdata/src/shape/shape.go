package shape

//closed:union
type Shape interface{ shape() }

type Circle struct{}

func (Circle) shape() {}

//closed:union
type Bad struct{ N int } // want `struct shape\.Bad is marked closed but can be instantiated; closed types must be interfaces`

//closed:union
type Num int // want `type shape\.Num is marked closed but can be instantiated`

// a marked variant is judged by its base
//
//closed:union
type Inner struct{}

func (Inner) shape() {}

type (
	//closed:union
	Grouped struct{} // want `struct shape\.Grouped is marked closed`
)
