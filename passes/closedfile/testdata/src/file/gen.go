// Code generated by hand. DO NOT EDIT.

package file

type Triangle struct{}

func (Triangle) shape() {}
