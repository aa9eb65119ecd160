// Code generated by hand. DO NOT EDIT.

package shape

//closed:union
type Generated struct{}
