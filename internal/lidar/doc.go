/*
Package lidar reads SIRTA Doppler lidar wind-profile exports and locates
records by date-time.

RECORD LAYOUT (one comma-separated record per line, optional header line):
├── Field 0-2   year, month, day (integers)
├── Field 3     hour of day as a fractional value, in steps of 1/6 hour
├── Field 4-15  instrument columns, retained but unused
└── Field 16-26 horizontal wind speed (m/s) at 40, 60, 80, 120, 140, 150,
                160, 180, 200, 225 and 250 m

Samples at or below -990 are instrument sentinels for a missing reading.

TIME RESOLUTION:
The exporter writes the hour as a float, so 13:50 appears as 13.8333. The
fractional part is snapped to a 10-minute bucket with a 0.01 hour tolerance.
Records are written in time order, one every 10 minutes, which lets Locate
estimate a record's position from the file's first and last timestamps and
then correct the estimate in 10-minute steps.
*/
package lidar
