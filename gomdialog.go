package gomdialog

import (
	"github.com/gompdf/gomdialog/pkg/api"
)

type DialogBox = api.DialogBox
type Storyboard = api.Storyboard
type Assets = api.Assets
type Options = api.Options
type Option = api.Option
type Metrics = api.Metrics
type FixedMetrics = api.FixedMetrics
type Surface = api.Surface
type Frame = api.Frame
type Source = api.Source
type Transition = api.Transition

func New(metrics Metrics, opts ...Option) *DialogBox             { return api.New(metrics, opts...) }
func NewWithOptions(metrics Metrics, options Options) *DialogBox { return api.NewWithOptions(metrics, options) }
func NewStoryboard(opts ...Option) *Storyboard                   { return api.NewStoryboard(opts...) }
func NewAssets(base string, options Options) *Assets             { return api.NewAssets(base, options) }
func DefaultOptions() Options                                    { return api.DefaultOptions() }

var (
	WithViewport       = api.WithViewport
	WithSize           = api.WithSize
	WithPosition       = api.WithPosition
	WithMargin         = api.WithMargin
	WithBorderWidth    = api.WithBorderWidth
	WithFillColor      = api.WithFillColor
	WithBorderColor    = api.WithBorderColor
	WithTextColor      = api.WithTextColor
	WithIndicatorColor = api.WithIndicatorColor
	WithIndicatorGlyph = api.WithIndicatorGlyph
	WithIndicatorImage = api.WithIndicatorImage
	WithStyle          = api.WithStyle
	WithBackground     = api.WithBackground
	WithClock          = api.WithClock
	WithDebug          = api.WithDebug
	WithLogOutput      = api.WithLogOutput
	WithResourcePath   = api.WithResourcePath
	WithTitle          = api.WithTitle
	WithAuthor         = api.WithAuthor
	WithSubject        = api.WithSubject

	CornflowerBlue = api.CornflowerBlue

	ErrBoxTooSmall    = api.ErrBoxTooSmall
	ErrInvalidMetrics = api.ErrInvalidMetrics
)

const (
	TransitionNone     = api.TransitionNone
	TransitionNextPage = api.TransitionNextPage
	TransitionFinished = api.TransitionFinished
	TransitionSkipped  = api.TransitionSkipped
)
