package lib

//closed:union
type Shape interface{ shape() } // want Shape:`marked\(closed:union\)`

type Circle struct{ R int }

func (Circle) shape() {}

type Square struct{ S int }

func (*Square) shape() {}

//closed:union
//go:generate echo
type Token interface{ token() } // want Token:`marked\(closed:union go:generate\)`

//go:generate echo
type Open interface{ Open() }
