package speedyxml

import (
	"encoding/xml"
	"testing"
)

func BenchmarkWriterGeneral(b *testing.B) {
	for i := 0; i < b.N; i++ {
		w := Open(Null{})

		must(w.WriteStart("", "foo"))
		must(w.WriteStart("", "bar"))
		must(w.WriteAttribute("a", "true"))
		must(w.WriteStart("", "baz"))
		for j := 0; j < 5; j++ {
			must(w.WriteEmpty("", "test"))
		}
		must(w.WriteComment("this is  a comment"))
		must(w.WriteCData("pants pants revolution"))
		must(w.WriteEnd("", "baz"))
		must(w.WriteEnd("", "bar"))
		must(w.WriteEnd("", "foo"))
		must(w.Finish())
	}
}

type Outer struct {
	Name   string  `xml:"name,attr"`
	Inners []Inner `xml:"inner"`
}

type Inner struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

func makeStruct(cnt int) *Outer {
	names := []string{"foo", "bar", "baz", "qux", "pants", "trou"}
	values := []string{"yep", "nup", "wahey", "ding", "dong"}
	o := &Outer{Name: "hi", Inners: make([]Inner, cnt)}
	for i := 0; i < cnt; i++ {
		o.Inners[i] = Inner{Name: names[i%len(names)], Value: values[i%len(values)]}
	}
	return o
}

func BenchmarkWriterHuge(b *testing.B) {
	benchmarkWriter(b, 30000)
}

func BenchmarkWriterSmall(b *testing.B) {
	benchmarkWriter(b, 10)
}

func benchmarkWriter(b *testing.B, cnt int) {
	b.StopTimer()
	o := makeStruct(cnt)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		w := Open(Null{})

		must(w.WriteStart("", "outer"))
		must(w.WriteAttribute("name", o.Name))
		for _, c := range o.Inners {
			must(w.WriteEmpty("", "inner"))
			must(w.WriteAttribute("name", c.Name))
			must(w.WriteAttribute("value", c.Value))
		}
		must(w.WriteEnd("", "outer"))
		must(w.Finish())
	}
}

func benchmarkGolang(b *testing.B, cnt int) {
	b.StopTimer()
	o := makeStruct(cnt)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		must(xml.NewEncoder(Null{}).Encode(o))
	}
}

func BenchmarkGolangHuge(b *testing.B) {
	benchmarkGolang(b, 30000)
}

func BenchmarkGolangSmall(b *testing.B) {
	benchmarkGolang(b, 10)
}

func BenchmarkEscapeContentClean(b *testing.B) {
	s := "a perfectly ordinary string with nothing to escape in it"
	for i := 0; i < b.N; i++ {
		EscapeContent(s)
	}
}

func BenchmarkEscapeContentDirty(b *testing.B) {
	s := `a string full of <markup> & "quotes" that needs the slow path`
	for i := 0; i < b.N; i++ {
		EscapeContent(s)
	}
}

func BenchmarkReplay(b *testing.B) {
	src := `more stuff<then a_tag="here">with content and <![CDATA[value]]></end>`
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		w := Open(Null{})
		r := NewReader(src)
		for {
			ev, err := r.Next()
			if err != nil {
				break
			}
			must(w.WriteEvent(ev))
		}
		must(w.Finish())
	}
}
