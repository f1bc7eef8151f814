package app

const Name = "gwswitch"
