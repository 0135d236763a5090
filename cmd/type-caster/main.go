// Command type-caster resolves and runs conversions between type
// descriptors from the command line.
//
//	type-caster resolve '[]i32' 'list<*i64>'
//	type-caster convert 'map<string,i16>' 'map<string,f64>' '{a: 1, b: 2}'
//	type-caster -chain chain.yaml check
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
