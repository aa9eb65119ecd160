// Code generated by hand. DO NOT EDIT.

package excl

func genMissing(s Sealed) {
	switch s.(type) {
	}
}
