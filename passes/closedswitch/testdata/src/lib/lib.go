package lib

//closed:union
type Shape interface{ shape() }

type Circle struct{ R int }

func (Circle) shape() {}

type Square struct{ S int }

func (*Square) shape() {}
