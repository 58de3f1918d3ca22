package attrib

// Source describes where a single output vertex's attribute value comes
// from: either an exact original endpoint, or linear interpolation
// between an edge's two endpoints at parameter T. fill.VertexSource and
// stroke.Source both convert to this shape so one Interpolate serves
// both tessellators.
type Source struct {
	IsEndpoint bool
	Endpoint   uint32
	From, To   uint32
	T          float32
}

// Interpolate writes vertex's attribute value into out (caller-supplied,
// length Components), resolving one or more Sources against attrs:
//
//   - a single Endpoint source copies that endpoint's value directly;
//   - a single Edge source (IsEndpoint == false) linearly interpolates
//     between attrs.Get(From) and attrs.Get(To) at T;
//   - more than one source (coincident endpoints, or a vertex born at a
//     self-intersection between two distinct edges) averages their
//     resolved values.
//
// out's length must equal attrs.Components; Interpolate does not resize
// it.
func Interpolate(out []float32, srcs []Source, attrs Set) {
	n := len(srcs)
	if n == 0 {
		for i := range out {
			out[i] = 0
		}
		return
	}
	if n == 1 && srcs[0].IsEndpoint {
		copy(out, attrs.Get(srcs[0].Endpoint))
		return
	}

	for i := range out {
		out[i] = 0
	}
	for _, s := range srcs {
		if s.IsEndpoint {
			v := attrs.Get(s.Endpoint)
			for c := 0; c < len(out) && c < len(v); c++ {
				out[c] += v[c]
			}
			continue
		}
		from := attrs.Get(s.From)
		to := attrs.Get(s.To)
		for c := 0; c < len(out); c++ {
			var a, b float32
			if c < len(from) {
				a = from[c]
			}
			if c < len(to) {
				b = to[c]
			}
			out[c] += a*(1-s.T) + b*s.T
		}
	}
	if n > 1 {
		inv := 1 / float32(n)
		for c := range out {
			out[c] *= inv
		}
	}
}
