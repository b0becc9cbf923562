package speedyxml

import "bufio"

// printer owns the output buffer. bufio.Writer caches the first write
// error and discards everything after it, so the writing code can emit a
// whole construct unconditionally and collect the error once at the end.
// The cachedWriteError idiom is cribbed from the stdlib's encoding/xml.
type printer struct {
	*bufio.Writer
}

func (p *printer) cachedWriteError() error {
	_, err := p.Write(nil)
	return err
}
