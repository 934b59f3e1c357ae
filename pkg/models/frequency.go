package models

// StandardFrequencies is the fixed frequency grid (Hz) of the home-test
// chart layout, ordered ascending. The chart's x axis spans the first to
// the last entry on a logarithmic scale.
var StandardFrequencies = []int{64, 125, 250, 500, 1000, 2000, 4000, 8000, 16000}

// ClinicalFrequencies is the denser grid used by clinical audiology
// reports, including inter-octave frequencies.
var ClinicalFrequencies = []int{125, 250, 500, 750, 1000, 1500, 2000, 3000, 4000, 6000, 8000}
