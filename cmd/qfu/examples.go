package main

const helpExamples = `
Example 1: update a device selected by vid:pid. Fails if multiple devices
with the same vid:pid are found.

  $ sudo qfu \
        --update \
        -d 1199:68c0 \
        SWI9X15C_05.05.58.00.cwe \
        SWI9X15C_05.05.58.00_Generic_005.025_002.nvu

Example 2: update through an explicit QMI cdc-wdm device, overriding the
firmware, config and carrier strings detected from the image names.

  $ sudo qfu \
        --update \
        --cdc-wdm /dev/cdc-wdm0 \
        --firmware-version 05.05.58.00 \
        --config-version 005.025_002 \
        --carrier Generic \
        SWI9X15C_05.05.58.00.cwe \
        SWI9X15C_05.05.58.00_Generic_005.025_002.nvu

Example 3: manual two-step update. First reset the device into QDL download
mode, then flash while it sits in QDL mode.

  $ sudo qfu -d 1199:68a2 --reset
  $ sudo qfu -d 1199:68a2 --update-qdl \
        9999999_9999999_9200_03.05.14.00_00_generic_000.000_001_SPKG_MC.cwe

Example 4: verify firmware images without touching any device.

  $ qfu --verify \
        SWI9X15C_05.05.58.00.cwe \
        SWI9X15C_05.05.58.00_Generic_005.025_002.nvu
`
