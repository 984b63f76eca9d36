package labelgen_test

import (
	"bytes"
	"fmt"

	"github.com/kantina/labelgen"
	"github.com/kantina/labelgen/schema"
)

func ExampleGenerator_Generate() {
	tpl, err := schema.ParseTemplate([]byte(`{
		"schemas": [{
			"dish": {
				"type": "text",
				"position": {"x": 5, "y": 5},
				"width": 70, "height": 10,
				"fontSize": 10, "alignment": "center"
			},
			"ean": {
				"type": "ean13",
				"position": {"x": 20, "y": 20},
				"width": 40, "height": 15
			}
		}]
	}`))
	if err != nil {
		fmt.Println(err)
		return
	}

	gen := labelgen.New()
	pdf, warns, err := gen.Generate(tpl, schema.Inputs{
		"dish": "<b>Kyllingfilet</b> med ris",
		"ean":  "5901234123457",
	}, 80, 40)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("valid:", bytes.HasPrefix(pdf, []byte("%PDF")))
	fmt.Println("warnings:", len(warns))
	// Output:
	// valid: true
	// warnings: 0
}

func ExampleGenerator_GenerateBatch() {
	tpl, _ := schema.ParseTemplate([]byte(`{
		"schemas": [{
			"dish": {"type": "text", "position": {"x": 5, "y": 5}, "width": 90, "height": 10, "fontSize": 12}
		}]
	}`))

	gen := labelgen.New()
	var buf bytes.Buffer
	warns, err := gen.RenderBatch(&buf, tpl, []schema.Inputs{
		{"dish": "Kyllingfilet med ris"},
		{"dish": "Laks med poteter"},
		{"dish": "Vegetarlasagne"},
	}, 100, 50)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("bytes written:", buf.Len() > 0)
	fmt.Println("warnings:", len(warns))
	// Output:
	// bytes written: true
	// warnings: 0
}
