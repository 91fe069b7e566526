// Code generated by ent, DO NOT EDIT.

package ent

import (
	"go-shortlink/ent/link"
	"go-shortlink/ent/schema"
	"go-shortlink/ent/visit"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	linkFields := schema.Link{}.Fields()
	_ = linkFields
	// linkDescShortCode is the schema descriptor for short_code field.
	linkDescShortCode := linkFields[0].Descriptor()
	// link.ShortCodeValidator is a validator for the "short_code" field. It is called by the builders before save.
	link.ShortCodeValidator = func() func(string) error {
		validators := linkDescShortCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(short_code string) error {
			for _, fn := range fns {
				if err := fn(short_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// linkDescLongURL is the schema descriptor for long_url field.
	linkDescLongURL := linkFields[1].Descriptor()
	// link.LongURLValidator is a validator for the "long_url" field. It is called by the builders before save.
	link.LongURLValidator = func() func(string) error {
		validators := linkDescLongURL.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(long_url string) error {
			for _, fn := range fns {
				if err := fn(long_url); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// linkDescClickCount is the schema descriptor for click_count field.
	linkDescClickCount := linkFields[3].Descriptor()
	// link.DefaultClickCount holds the default value on creation for the click_count field.
	link.DefaultClickCount = linkDescClickCount.Default.(int64)
	// link.ClickCountValidator is a validator for the "click_count" field. It is called by the builders before save.
	link.ClickCountValidator = linkDescClickCount.Validators[0].(func(int64) error)
	// linkDescDescription is the schema descriptor for description field.
	linkDescDescription := linkFields[5].Descriptor()
	// link.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	link.DescriptionValidator = linkDescDescription.Validators[0].(func(string) error)
	// linkDescCreatedAt is the schema descriptor for created_at field.
	linkDescCreatedAt := linkFields[6].Descriptor()
	// link.DefaultCreatedAt holds the default value on creation for the created_at field.
	link.DefaultCreatedAt = linkDescCreatedAt.Default.(func() time.Time)
	// linkDescUpdatedAt is the schema descriptor for updated_at field.
	linkDescUpdatedAt := linkFields[7].Descriptor()
	// link.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	link.DefaultUpdatedAt = linkDescUpdatedAt.Default.(func() time.Time)
	// link.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	link.UpdateDefaultUpdatedAt = linkDescUpdatedAt.UpdateDefault.(func() time.Time)
	visitFields := schema.Visit{}.Fields()
	_ = visitFields
	// visitDescShortCode is the schema descriptor for short_code field.
	visitDescShortCode := visitFields[0].Descriptor()
	// visit.ShortCodeValidator is a validator for the "short_code" field. It is called by the builders before save.
	visit.ShortCodeValidator = func() func(string) error {
		validators := visitDescShortCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(short_code string) error {
			for _, fn := range fns {
				if err := fn(short_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// visitDescLongURL is the schema descriptor for long_url field.
	visitDescLongURL := visitFields[1].Descriptor()
	// visit.LongURLValidator is a validator for the "long_url" field. It is called by the builders before save.
	visit.LongURLValidator = func() func(string) error {
		validators := visitDescLongURL.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(long_url string) error {
			for _, fn := range fns {
				if err := fn(long_url); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// visitDescUserAgent is the schema descriptor for user_agent field.
	visitDescUserAgent := visitFields[2].Descriptor()
	// visit.UserAgentValidator is a validator for the "user_agent" field. It is called by the builders before save.
	visit.UserAgentValidator = visitDescUserAgent.Validators[0].(func(string) error)
	// visitDescIPAddress is the schema descriptor for ip_address field.
	visitDescIPAddress := visitFields[3].Descriptor()
	// visit.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	visit.IPAddressValidator = visitDescIPAddress.Validators[0].(func(string) error)
	// visitDescReferer is the schema descriptor for referer field.
	visitDescReferer := visitFields[4].Descriptor()
	// visit.RefererValidator is a validator for the "referer" field. It is called by the builders before save.
	visit.RefererValidator = visitDescReferer.Validators[0].(func(string) error)
	// visitDescVisitedAt is the schema descriptor for visited_at field.
	visitDescVisitedAt := visitFields[5].Descriptor()
	// visit.DefaultVisitedAt holds the default value on creation for the visited_at field.
	visit.DefaultVisitedAt = visitDescVisitedAt.Default.(func() time.Time)
}
