// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slicef6t5j2VxM4W6o1ttdXebSAΞΞ = ord.NewSliceSer[ID](IDMUS)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return ord.String.Size(string(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var MetricsMUS = metricsMUS{}

type metricsMUS struct{}

func (s metricsMUS) Marshal(v Metrics, bs []byte) (n int) {
	n = varint.Int.Marshal(v.RetweetCount, bs)
	n += varint.Int.Marshal(v.ReplyCount, bs[n:])
	n += varint.Int.Marshal(v.LikeCount, bs[n:])
	return n + varint.Int.Marshal(v.QuoteCount, bs[n:])
}

func (s metricsMUS) Unmarshal(bs []byte) (v Metrics, n int, err error) {
	v.RetweetCount, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.ReplyCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LikeCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.QuoteCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (s metricsMUS) Size(v Metrics) (size int) {
	size = varint.Int.Size(v.RetweetCount)
	size += varint.Int.Size(v.ReplyCount)
	size += varint.Int.Size(v.LikeCount)
	return size + varint.Int.Size(v.QuoteCount)
}

func (s metricsMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Int.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	return
}

var RecordMUS = recordMUS{}

type recordMUS struct{}

func (s recordMUS) Marshal(v Record, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Text, bs[n:])
	n += ord.String.Marshal(v.CreatedAt, bs[n:])
	n += ord.String.Marshal(v.AuthorId, bs[n:])
	n += ord.String.Marshal(v.Lang, bs[n:])
	n += MetricsMUS.Marshal(v.Metrics, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.CollectedAt, bs[n:])
}

func (s recordMUS) Unmarshal(bs []byte) (v Record, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AuthorId, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Lang, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metrics, n1, err = MetricsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CollectedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s recordMUS) Size(v Record) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Text)
	size += ord.String.Size(v.CreatedAt)
	size += ord.String.Size(v.AuthorId)
	size += ord.String.Size(v.Lang)
	size += MetricsMUS.Size(v.Metrics)
	return size + raw.TimeUnixMicro.Size(v.CollectedAt)
}

func (s recordMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = MetricsMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var CachedSearchMUS = cachedSearchMUS{}

type cachedSearchMUS struct{}

func (s cachedSearchMUS) Marshal(v CachedSearch, bs []byte) (n int) {
	n = ord.String.Marshal(v.Query, bs)
	n += slicef6t5j2VxM4W6o1ttdXebSAΞΞ.Marshal(v.RecordIds, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.SearchedAt, bs[n:])
}

func (s cachedSearchMUS) Unmarshal(bs []byte) (v CachedSearch, n int, err error) {
	v.Query, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.RecordIds, n1, err = slicef6t5j2VxM4W6o1ttdXebSAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SearchedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s cachedSearchMUS) Size(v CachedSearch) (size int) {
	size = ord.String.Size(v.Query)
	size += slicef6t5j2VxM4W6o1ttdXebSAΞΞ.Size(v.RecordIds)
	return size + raw.TimeUnixMicro.Size(v.SearchedAt)
}

func (s cachedSearchMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = slicef6t5j2VxM4W6o1ttdXebSAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
