package custom

//sumtype:decl
type Expr interface{ expr() } // want Expr:`marked\(sumtype:decl\)`

//closed:union
type Ignored interface{ ignored() }
