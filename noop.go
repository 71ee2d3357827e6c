package tracef

type noopTracer struct{}

func (noopTracer) Trace(Literal, ...Arg)   {}
func (noopTracer) Debug(Literal, ...Arg)   {}
func (noopTracer) Info(Literal, ...Arg)    {}
func (noopTracer) Warn(Literal, ...Arg)    {}
func (noopTracer) Error(Literal, ...Arg)   {}
func (noopTracer) Fatal(Literal, ...Arg)   {}
func (noopTracer) Message(Literal, ...Arg) {}
