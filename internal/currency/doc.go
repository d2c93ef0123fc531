// Package currency renders monetary amounts for charts, tooltips, and
// summary cards, and parses currency-formatted strings back into numbers.
//
// Amounts are abbreviated under an explicit unit convention: Indian
// (thousand/lakh/crore) or international (K/M/B). The convention is a
// configuration value rather than a hidden constant so that every call site
// shares one behavior knob.
//
//	f := currency.DefaultFormatter()        // Indian convention, "₹"
//	f.FormatCompact(12_500_000)             // "₹1.25 Cr"
//	f.FormatAxisTick(12_500_000)            // "1.2Cr"
//	f.FormatRaw(12_345_678)                 // "₹1,23,45,678"
//	currency.ParseAmount("₹1,23,456.78")    // 123456.78
//
// All functions are total over the reals: NaN and infinities render as the
// fallback string and parse failures yield zero, never an error. Formatting
// sits on dashboard render paths where throwing is not an option.
package currency
