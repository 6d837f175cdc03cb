package geojson

import (
	"context"
	"errors"
	"io"

	eng "github.com/andyprasetya/geojson/internal/engine"
)

// ParseFrom is the primary entry point. It materializes one JSON value from
// the Source and dispatches it on its "type" member.
func ParseFrom(ctx context.Context, src Source, opts ...ParseOpt) (GeoJSON, error) {
	return ParseFromAs(ctx, AnyCodec(), src, opts...)
}

// ParseFromAs is ParseFrom for a fixed model type, e.g.
//
//	fc, err := geojson.ParseFromAs(ctx, geojson.FeatureCollectionCodec(), geojson.JSONBytes(data))
func ParseFromAs[T GeoJSON](ctx context.Context, c Codec[T], src Source, opts ...ParseOpt) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	v, err := ReadTree(src, opts...)
	if err != nil {
		return zero, err
	}
	return DecodeTree(c, v)
}

// Parse decodes a JSON document held in memory.
func Parse(data []byte) (GeoJSON, error) {
	return ParseFrom(context.Background(), JSONBytes(data))
}

// ParseString decodes a JSON document held in a string.
func ParseString(s string) (GeoJSON, error) { return Parse([]byte(s)) }

// ParseGeometry decodes a JSON geometry object.
func ParseGeometry(data []byte) (*Geometry, error) {
	return ParseFromAs(context.Background(), GeometryCodec(), JSONBytes(data))
}

// ParseFeature decodes a JSON feature object.
func ParseFeature(data []byte) (*Feature, error) {
	return ParseFromAs(context.Background(), FeatureCodec(), JSONBytes(data))
}

// ParseFeatureCollection decodes a JSON feature collection.
func ParseFeatureCollection(data []byte) (*FeatureCollection, error) {
	return ParseFromAs(context.Background(), FeatureCollectionCodec(), JSONBytes(data))
}

// StreamParse reads a document from r. When MaxBytes is set it enforces the
// size cap up front, otherwise it delegates directly to ParseFrom via the
// Source driver.
func StreamParse(ctx context.Context, r io.Reader, opts ...ParseOpt) (GeoJSON, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		lr := io.LimitReader(r, opt.MaxBytes+1)
		data, err := io.ReadAll(lr)
		if err != nil {
			return nil, singleIssue(CodeParseError, err.Error())
		}
		if int64(len(data)) > opt.MaxBytes {
			return nil, singleIssue(CodeTruncated, "max bytes exceeded")
		}
		return ParseFrom(ctx, JSONBytes(data), opts...)
	}
	return ParseFrom(ctx, JSONReader(r), opts...)
}

// ReadTree materializes exactly one JSON value from src as a generic tree,
// applying the enforcement configured in opts. Tokenizer failures and
// trailing data are reported as malformed_json.
func ReadTree(src Source, opts ...ParseOpt) (any, error) {
	ts, conv := openTokens(src, lastOpt(opts))
	v, err := eng.DecodeAnyWithConv(ts, conv)
	if err != nil {
		return nil, toIssues(err)
	}
	if err := expectEOF(ts); err != nil {
		return nil, err
	}
	return v, nil
}

// ---- helpers ----

// openTokens wraps src with the enforcement configured in opt and picks the
// number conversion for its NumberMode.
func openTokens(src Source, opt ParseOpt) (eng.TokenSource, eng.NumberConv) {
	var sink func(eng.SimpleIssue)
	if opt.OnIssue != nil {
		sink = func(si eng.SimpleIssue) {
			opt.OnIssue(Issue{Path: si.Path, Code: si.Code, Message: si.Message})
		}
	}
	eopt := eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		IssueSink:   sink,
	}
	var ts eng.TokenSource = src
	if !eopt.Disabled() {
		ts = eng.WrapWithEnforcement(ts, eopt)
	}
	conv := eng.JSONNumber
	if src.NumberMode() == NumberFloat64 {
		conv = eng.Float64
	}
	return ts, conv
}

// expectEOF reports trailing data after the top-level value.
func expectEOF(ts eng.TokenSource) error {
	if _, err := ts.NextToken(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return toIssues(err)
	}
	return nil
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return ParseOpt{}
}

func toIssues(err error) Issues {
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: ie.Message})
	}
	return AppendIssues(nil, Issue{Path: "/", Code: CodeMalformedJSON, Message: err.Error(), Cause: err})
}
