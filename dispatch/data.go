package dispatch

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/dmitrymomot/pagekit/pkg/logger"
)

// serveData runs the data path: the processor result becomes a string,
// a JSON payload or an error envelope.
func (d *Dispatcher) serveData(ctx context.Context, log *slog.Logger, segments []string, chunk *ChunkParams) {
	resp := chunk.Exchange.Response
	req := chunk.Exchange.Request

	if v := req.Header.Get(HeaderAjaxVersion); v != "" && v != d.cfg.AjaxVersion {
		log.DebugContext(ctx, "ajax version mismatch", slog.String("client", v), slog.String("server", d.cfg.AjaxVersion))
		d.respondWithError(resp, ThrowError(DefaultErrorName, d.cfg.WrongVersionMessage), true)
		return
	}

	result := d.process(ctx, log, segments, chunk)
	if resp.Ended() {
		return
	}

	switch result.Kind() {
	case ResultError:
		err := result.Err()
		if err == nil {
			err = NewError(DefaultErrorName, "")
		}
		d.respondWithError(resp, err, result.Thrown())
	case ResultText:
		d.formatter.SetHeaders(resp.Header(), KindText)
		resp.SetHeader(HeaderResponseType, ResponseTypeString)
		d.end(ctx, log, resp, result.String())
	default:
		body, err := marshalJSON(result.Value())
		if err != nil {
			d.fault(ctx, resp, log, "encode result", errors.Wrap(err, "encode result"))
			return
		}
		d.formatter.SetHeaders(resp.Header(), KindJSON)
		resp.SetHeader(HeaderResponseType, ResponseTypeJSON)
		d.end(ctx, log, resp, string(body))
	}
}

// process calls the processor. A panic is reported as a server fault.
func (d *Dispatcher) process(ctx context.Context, log *slog.Logger, segments []string, chunk *ChunkParams) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			d.fault(ctx, chunk.Exchange.Response, log, "processor panicked", recovered(rec))
			res = Result{}
		}
	}()
	return d.processor.Process(ctx, segments, chunk)
}

func (d *Dispatcher) end(ctx context.Context, log *slog.Logger, resp *Response, body string) {
	if err := resp.End(body); err != nil && !errors.Is(err, ErrResponseEnded) {
		log.WarnContext(ctx, "write response", logger.Error(err))
	}
}
